package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportJSON(t *testing.T) {
	rep := Report{
		RunID:  "0191d2c8-0000-7000-8000-000000000000",
		Status: StatusInfiniteLoop,
		Blocks: 6,
		At:     "3&D",
		Events: []Event{
			{Corner: "5&D", Checkpoint: CheckpointStartSouth, Heading: South, Blocks: 0},
			{Corner: "3&D", Checkpoint: CheckpointGoSouth, Heading: South, Blocks: 2},
		},
	}

	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "infinite_loop", decoded["status"])
	assert.Equal(t, "3&D", decoded["at"])
	assert.Equal(t, float64(6), decoded["blocks"])

	events, ok := decoded["events"].([]any)
	require.True(t, ok)
	require.Len(t, events, 2)
	first, ok := events[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "south", first["heading"], "headings marshal as words")
	assert.Equal(t, "start_south", first["checkpoint"])
}

func TestReportJSONOmitsEmptyAt(t *testing.T) {
	rep := Report{Status: StatusSuccess, Blocks: 2}

	data, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"at"`, "successful walks have no offending corner")
}
