package harness

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarios_Golden runs every scenario under testdata/scenarios and
// compares its trace with testdata/golden/<name>.golden.
func TestScenarios_Golden(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(path)
			require.NoError(t, err)
			assert.Equal(t, name, s.Name, "scenario name should match its file name")

			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestAssertGolden_ReusesResult(t *testing.T) {
	s, err := LoadScenario("../../testdata/scenarios/single_cell.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	AssertGolden(t, "single_cell", result)
}

func TestResult_Trace(t *testing.T) {
	s := cornerScenario()
	s.Moves = []MoveStep{
		{X: 0, Y: 0, Action: "l"},
		{X: 9, Y: 9, Action: "r"},
		{X: 0, Y: 0, Action: "?"},
	}

	result, err := Run(s)
	require.NoError(t, err)

	want := `scenario: corner
config: 3x2/1
seq=1 start 3x2/1 -> status=in_progress
seq=2 reveal (0,0) -> revealed +4 | status=in_progress revealed=4 flags=0
seq=3 flag (9,9) -> rejected OUT_OF_BOUNDS | status=in_progress revealed=4 flags=0
seq=- "0 0 ?" -> rejected INVALID_ACTION
final: status=in_progress revealed=4 flags=0
board:
  01.
  01.
`
	assert.Equal(t, want, result.Trace())
}

func TestBoardRows(t *testing.T) {
	tokens := []string{"", "F", "0", "3", "*", ""}
	assert.Equal(t, []string{".F0", "3*."}, BoardRows(tokens, 3))
	assert.Nil(t, BoardRows(nil, 3))
}
