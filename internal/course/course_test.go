package course

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flaneur/pkg/types"
)

func TestParse(t *testing.T) {
	input := `# a small tour
grid 5x5

1&C start_north
2&C turn_right   # then east toward avenue B
2&B stop
`

	grid, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, types.Dimensions{Columns: 5, Rows: 5}, grid.Dimensions())
	assert.Equal(t, 3, grid.Len())

	start, ok := grid.Start()
	require.True(t, ok)
	assert.Equal(t, "1&C", start.Corner())

	c, ok := grid.CheckpointAt(types.Position{Column: 2, Row: 1})
	require.True(t, ok)
	assert.Equal(t, types.CheckpointTurnRight, c.Name())
}

func TestParseLastStartWins(t *testing.T) {
	input := `grid 4x4
1&A start_north
3&C start_east
`

	grid, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	start, ok := grid.Start()
	require.True(t, ok)
	assert.Equal(t, "3&C", start.Corner())
}

func TestParseGridDirectiveOrientation(t *testing.T) {
	// The directive reads streets first, avenues second: a 2x9 course is
	// two streets crossing nine avenues, so 1&H parses and 3&A does not.
	input := "grid 2x9\n1&H start_west\n2&A stop\n"

	grid, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, types.Dimensions{Columns: 9, Rows: 2}, grid.Dimensions())

	_, err = Parse(strings.NewReader("grid 2x9\n3&A start_north\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the 2x9 grid")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error  // matched with ErrorIs when set
		wantMsg string // substring of the error text
	}{
		{
			name:    "empty course",
			input:   "",
			wantMsg: "missing grid directive",
		},
		{
			name:    "comments only",
			input:   "# nothing here\n\n# still nothing\n",
			wantMsg: "missing grid directive",
		},
		{
			name:    "placement before grid directive",
			input:   "1&A start_north\ngrid 4x4\n",
			wantMsg: "line 1",
		},
		{
			name:    "duplicate grid directive",
			input:   "grid 4x4\ngrid 5x5\n1&A start_north\n",
			wantMsg: "line 2: duplicate grid directive",
		},
		{
			name:    "malformed grid size",
			input:   "grid 4by4\n",
			wantMsg: "malformed grid size",
		},
		{
			name:    "street count not a number",
			input:   "grid axe4\n",
			wantMsg: "malformed street count",
		},
		{
			name:    "zero avenues",
			input:   "grid 4x0\n",
			wantErr: types.ErrBadDimensions,
		},
		{
			name:    "too many avenues",
			input:   "grid 4x27\n",
			wantErr: types.ErrBadDimensions,
		},
		{
			name:    "too many streets",
			input:   "grid 1000x4\n",
			wantErr: types.ErrBadDimensions,
		},
		{
			name:    "malformed corner",
			input:   "grid 4x4\nA3 start_north\n",
			wantErr: types.ErrBadCorner,
		},
		{
			name:    "corner outside the grid",
			input:   "grid 4x4\n5&A start_north\n",
			wantMsg: "outside the 4x4 grid",
		},
		{
			name:    "unknown checkpoint",
			input:   "grid 4x4\n1&A start_north\n2&B turn_around\n",
			wantErr: types.ErrUnknownCheckpoint,
		},
		{
			name:    "duplicate placement",
			input:   "grid 4x4\n1&A start_north\n1&A stop\n",
			wantErr: types.ErrDuplicatePlacement,
		},
		{
			name:    "too many fields",
			input:   "grid 4x4\n1&A start_north extra\n",
			wantMsg: "got 3 fields",
		},
		{
			name:    "no start checkpoint",
			input:   "grid 4x4\n1&A go_north\n2&A stop\n",
			wantErr: types.ErrMissingStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, grid)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseLineNumbersCountComments(t *testing.T) {
	input := "# one\n# two\ngrid 4x4\n\nbad&line stop\n"

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 5:", "line numbers refer to the raw file")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.course")
	content := "grid 3x3\n1&B start_north\n3&B stop\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	grid, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.course"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWrapsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.course")
	require.NoError(t, os.WriteFile(path, []byte("grid 4x4\n1&A dance\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.course", "loader errors name the file")
	assert.ErrorIs(t, err, types.ErrUnknownCheckpoint)
}
