package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{North, "north"},
		{South, "south"},
		{East, "east"},
		{West, "west"},
		{Stop, "stop"},
		{Direction(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dir.String())
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Direction
		wantErr error
	}{
		{name: "north", in: "north", want: North},
		{name: "south", in: "south", want: South},
		{name: "east", in: "east", want: East},
		{name: "west", in: "west", want: West},
		{name: "stop", in: "stop", want: Stop},
		{name: "unknown word rejected", in: "up", wantErr: ErrInvalidDirection},
		{name: "empty string rejected", in: "", wantErr: ErrInvalidDirection},
		{name: "case sensitive", in: "North", wantErr: ErrInvalidDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectionCompass(t *testing.T) {
	for _, d := range []Direction{North, South, East, West} {
		assert.True(t, d.Compass(), "%s should be a compass direction", d)
	}
	assert.False(t, Stop.Compass(), "stop is not a movement direction")
	assert.False(t, Direction(42).Compass())
}

func TestDirectionMarshalJSON(t *testing.T) {
	data, err := East.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"east"`, string(data))

	data, err = Stop.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"stop"`, string(data))
}
