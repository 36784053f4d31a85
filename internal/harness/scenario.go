package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/minesweep/internal/game"
)

// Scenario is one scripted game.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Config is the board to start.
	Config BoardConfig `yaml:"config"`

	// Mines lists fixed [x, y] mine positions. Mutually exclusive with Seed.
	Mines [][]int `yaml:"mines,omitempty"`

	// Seed selects a deterministic random layout.
	Seed *uint64 `yaml:"seed,omitempty"`

	// StartError is the error code the start itself is expected to fail
	// with. A scenario with StartError has no moves.
	StartError string `yaml:"start_error,omitempty"`

	// Moves are applied in order after the start.
	Moves []MoveStep `yaml:"moves,omitempty"`

	// Final is checked against a snapshot taken after the last move.
	Final *FinalState `yaml:"final,omitempty"`
}

// BoardConfig mirrors game.Config in scenario files.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// GameConfig converts to a game.Config. Validation happens on start.
func (c BoardConfig) GameConfig() game.Config {
	return game.NewConfig(c.Width, c.Height, c.Mines)
}

// MoveStep is one move and what it should produce.
type MoveStep struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Action string `yaml:"action"`

	// Expect is checked after the move. If nil, the move is not checked.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Line renders the step as a line of player input.
func (m MoveStep) Line() string {
	return fmt.Sprintf("%d %d %s", m.X, m.Y, m.Action)
}

// Expect holds the expected effect of one move. Unset fields are not
// checked, except Error: an expect clause without an error requires the
// move to be accepted.
type Expect struct {
	Error    string `yaml:"error,omitempty"`
	Outcome  string `yaml:"outcome,omitempty"`
	Status   string `yaml:"status,omitempty"`
	Revealed *int   `yaml:"revealed,omitempty"`
	Flags    *int   `yaml:"flags,omitempty"`
}

// FinalState is checked once all moves have run.
type FinalState struct {
	Status   string   `yaml:"status,omitempty"`
	Revealed *int     `yaml:"revealed,omitempty"`
	Flags    *int     `yaml:"flags,omitempty"`
	Board    []string `yaml:"board,omitempty"`
}

// LoadScenario reads, parses and validates a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or fails validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // catches "move:" vs "moves:"
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario applies the rules the schema cannot express.
func validateScenario(s *Scenario) error {
	if len(s.Mines) > 0 && s.Seed != nil {
		return fmt.Errorf("mines and seed are mutually exclusive")
	}

	if s.StartError != "" {
		if len(s.Moves) > 0 {
			return fmt.Errorf("start_error scenarios cannot have moves")
		}
		if s.Final != nil {
			return fmt.Errorf("start_error scenarios cannot have a final state")
		}
		return nil
	}

	if s.Config.Mines > 0 && len(s.Mines) == 0 && s.Seed == nil {
		return fmt.Errorf("config has %d mines: set mines or seed", s.Config.Mines)
	}
	if len(s.Mines) > 0 && len(s.Mines) != s.Config.Mines {
		return fmt.Errorf("config declares %d mines, mines lists %d", s.Config.Mines, len(s.Mines))
	}

	if s.Final != nil && len(s.Final.Board) > 0 {
		if len(s.Final.Board) != s.Config.Height {
			return fmt.Errorf("final.board: want %d rows, got %d", s.Config.Height, len(s.Final.Board))
		}
		for i, row := range s.Final.Board {
			if len(row) != s.Config.Width {
				return fmt.Errorf("final.board[%d]: want %d cells, got %d", i, s.Config.Width, len(row))
			}
		}
	}
	return nil
}

// minePositions converts Mines to the form game.LayoutFromMines takes.
func (s *Scenario) minePositions() [][2]int {
	out := make([][2]int, len(s.Mines))
	for i, m := range s.Mines {
		out[i] = [2]int{m[0], m[1]}
	}
	return out
}
