package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, `
name: corner_flood
description: "Reveal a corner"
config: {width: 3, height: 2, mines: 1}
mines: [[1, 2]]
moves:
  - x: 0
    y: 0
    action: l
    expect:
      status: in_progress
      revealed: 4
final:
  status: in_progress
  board: ["01.", "01."]
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "corner_flood", s.Name)
	assert.Equal(t, "Reveal a corner", s.Description)
	assert.Equal(t, BoardConfig{Width: 3, Height: 2, Mines: 1}, s.Config)
	assert.Equal(t, [][]int{{1, 2}}, s.Mines)
	assert.Nil(t, s.Seed)
	require.Len(t, s.Moves, 1)
	assert.Equal(t, "0 0 l", s.Moves[0].Line())
	require.NotNil(t, s.Moves[0].Expect)
	require.NotNil(t, s.Moves[0].Expect.Revealed)
	assert.Equal(t, 4, *s.Moves[0].Expect.Revealed)
	assert.Equal(t, []string{"01.", "01."}, s.Final.Board)
}

func TestLoadScenario_Seeded(t *testing.T) {
	path := writeScenario(t, `
name: seeded
config: {width: 5, height: 5, mines: 3}
seed: 42
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	require.NotNil(t, s.Seed)
	assert.Equal(t, uint64(42), *s.Seed)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
config: {width: 1, height: 1, mines: 0}
move:
  - {x: 0, y: 0, action: l}
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "move")
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "name: [unclosed\n")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenario_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing name",
			yaml: `config: {width: 1, height: 1, mines: 0}`,
		},
		{
			name: "name with spaces",
			yaml: "name: has spaces\nconfig: {width: 1, height: 1, mines: 0}",
		},
		{
			name: "negative width",
			yaml: "name: neg\nconfig: {width: -1, height: 1, mines: 0}",
		},
		{
			name: "mine with three coordinates",
			yaml: "name: triple\nconfig: {width: 2, height: 2, mines: 1}\nmines: [[0, 0, 0]]",
		},
		{
			name: "unknown status",
			yaml: "name: status\nconfig: {width: 1, height: 1, mines: 0}\nfinal: {status: paused}",
		},
		{
			name: "unknown move error code",
			yaml: "name: code\nconfig: {width: 1, height: 1, mines: 0}\nmoves: [{x: 0, y: 0, action: l, expect: {error: OOPS}}]",
		},
		{
			name: "config code as move error",
			yaml: "name: code\nconfig: {width: 1, height: 1, mines: 0}\nmoves: [{x: 0, y: 0, action: l, expect: {error: TOO_MANY_MINES}}]",
		},
		{
			name: "empty action",
			yaml: "name: act\nconfig: {width: 1, height: 1, mines: 0}\nmoves: [{x: 0, y: 0, action: \"\"}]",
		},
		{
			name: "bad board character",
			yaml: "name: board\nconfig: {width: 1, height: 1, mines: 0}\nfinal: {board: [\"?\"]}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema")
		})
	}
}

func TestParseScenario_CrossFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "mines and seed",
			yaml:    "name: both\nconfig: {width: 2, height: 2, mines: 1}\nmines: [[0, 0]]\nseed: 1",
			wantErr: "mutually exclusive",
		},
		{
			name:    "mines without layout",
			yaml:    "name: nolayout\nconfig: {width: 2, height: 2, mines: 1}",
			wantErr: "set mines or seed",
		},
		{
			name:    "mine count mismatch",
			yaml:    "name: count\nconfig: {width: 2, height: 2, mines: 2}\nmines: [[0, 0]]",
			wantErr: "declares 2 mines",
		},
		{
			name:    "start_error with moves",
			yaml:    "name: se\nconfig: {width: 0, height: 2, mines: 0}\nstart_error: EMPTY_BOARD\nmoves: [{x: 0, y: 0, action: l}]",
			wantErr: "cannot have moves",
		},
		{
			name:    "board row count",
			yaml:    "name: rows\nconfig: {width: 2, height: 2, mines: 0}\nfinal: {board: [\"..\"]}",
			wantErr: "want 2 rows",
		},
		{
			name:    "board row width",
			yaml:    "name: cols\nconfig: {width: 2, height: 2, mines: 0}\nfinal: {board: [\"..\", \"...\"]}",
			wantErr: "final.board[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateScenario_BuiltInCode(t *testing.T) {
	revealed := 9
	s := &Scenario{
		Name:   "in_code",
		Config: BoardConfig{Width: 3, Height: 3, Mines: 0},
		Moves:  []MoveStep{{X: 0, Y: 0, Action: "l", Expect: &Expect{Status: "won", Revealed: &revealed}}},
	}
	require.NoError(t, ValidateScenario(s))

	s.Moves[0].Expect.Status = "finished"
	assert.Error(t, ValidateScenario(s))
}

func TestLoadScenario_RepositoryScenarios(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := LoadScenario(path)
			require.NoError(t, err)
			assert.NotEmpty(t, s.Description)
		})
	}
}
