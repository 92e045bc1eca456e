package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/flaneur/pkg/types"
)

func TestHistoryRecord(t *testing.T) {
	h := NewHistory()
	pos := types.Position{Column: 2, Row: 3}

	assert.False(t, h.Record(pos, types.North), "first visit is not a repeat")
	assert.True(t, h.Record(pos, types.North), "same intersection, same heading repeats")
	assert.Equal(t, 1, h.Len(), "repeats are not re-added")
}

func TestHistoryHeadingMatters(t *testing.T) {
	h := NewHistory()
	pos := types.Position{Column: 1, Row: 1}

	assert.False(t, h.Record(pos, types.East))
	assert.False(t, h.Record(pos, types.West), "same intersection with a new heading is legal")
	assert.False(t, h.Record(types.Position{Column: 1, Row: 2}, types.East))
	assert.Equal(t, 3, h.Len())
}
