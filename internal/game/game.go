package game

import (
	"strings"
)

// Status is the game state machine: InProgress moves to exactly one of
// Won or Lost, and never leaves a terminal state.
type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further move is accepted.
func (s Status) IsTerminal() bool { return s == Won || s == Lost }

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "in_progress":
		return InProgress, true
	case "won":
		return Won, true
	case "lost":
		return Lost, true
	}
	return 0, false
}

// MoveResult describes an accepted move.
type MoveResult struct {
	Outcome Outcome
	// Revealed is the number of cells this move revealed.
	Revealed int
	Status   Status
}

// Game composes the configuration, the hidden layout, the display grid and
// the status. It is not safe for concurrent use: every call must be
// serialized by the owner (see internal/engine).
type Game struct {
	cfg     Config
	layout  *Layout
	display *Display
	status  Status
}

// New generates a fresh layout for cfg using rng and starts a game.
func New(cfg Config, rng Shuffler) (*Game, error) {
	l, err := Generate(cfg, rng)
	if err != nil {
		return nil, err
	}
	return NewWithLayout(l), nil
}

// NewWithLayout starts a game over a prepared layout.
func NewWithLayout(l *Layout) *Game {
	return &Game{
		cfg:     l.cfg,
		layout:  l,
		display: newDisplay(l.cfg),
		status:  InProgress,
	}
}

// Apply performs one move. Rejected moves return an error and change
// nothing. Hitting a mine is not an error: the move succeeds and the game
// is Lost. Once the game is Won or Lost every move returns ErrGameOver.
func (g *Game) Apply(m Move) (MoveResult, error) {
	if g.status.IsTerminal() {
		return MoveResult{Status: g.status}, newError(ErrCodeGameOver, "game already %s", g.status)
	}

	res := MoveResult{}
	switch m.Action {
	case ActionToggleFlag:
		if err := g.display.ToggleFlag(m.X, m.Y); err != nil {
			return MoveResult{Status: g.status}, err
		}

	case ActionReveal:
		outcome, n, err := reveal(g.layout, g.display, m.X, m.Y)
		if err != nil {
			return MoveResult{Status: g.status}, err
		}
		res.Outcome = outcome
		res.Revealed = n
		if outcome == OutcomeMineHit {
			g.status = Lost
			res.Status = g.status
			return res, nil
		}

	default:
		return MoveResult{Status: g.status}, newError(ErrCodeInvalidAction, "unknown action %d", m.Action)
	}

	// Checked after every accepted move, flag toggles included.
	if g.display.Revealed() == g.cfg.SafeCells() {
		g.status = Won
	}
	res.Status = g.status
	return res, nil
}

// Status returns the current status. Side-effect free.
func (g *Game) Status() Status { return g.status }

// Config returns the game configuration.
func (g *Game) Config() Config { return g.cfg }

// Revealed returns the number of revealed cells.
func (g *Game) Revealed() int { return g.display.Revealed() }

// Flags returns the number of flagged cells.
func (g *Game) Flags() int { return g.display.Flags() }

// Cell returns the display cell at (x, y).
func (g *Game) Cell(x, y int) (DisplayCell, error) {
	if !g.cfg.InBounds(x, y) {
		return DisplayCell{}, newCellError(ErrCodeOutOfBounds, x, y, "cell outside the board")
	}
	return g.display.At(x, y), nil
}

// Tokens exports the display grid row-major for rendering.
func (g *Game) Tokens() []string { return g.display.Tokens() }

// MineToken marks a mine in Solution.
const MineToken = "*"

// Solution exports the layout row-major (MineToken or the neighbor count).
// Available only once the game is over.
func (g *Game) Solution() ([]string, error) {
	if !g.status.IsTerminal() {
		return nil, newError(ErrCodeGameInProgress, "solution is hidden while the game is in progress")
	}
	out := make([]string, len(g.layout.cells))
	for i, c := range g.layout.cells {
		if c == mineCell {
			out[i] = MineToken
		} else {
			out[i] = DisplayCell{State: Revealed, Count: int(c)}.Token()
		}
	}
	return out, nil
}

// String dumps the display grid one row per line: " * " hidden,
// " F " flagged, " n " revealed.
func (g *Game) String() string {
	var b strings.Builder
	for x := 0; x < g.cfg.height; x++ {
		for y := 0; y < g.cfg.width; y++ {
			switch c := g.display.At(x, y); c.State {
			case Hidden:
				b.WriteString(" * ")
			case Flagged:
				b.WriteString(" F ")
			default:
				b.WriteByte(' ')
				b.WriteString(c.Token())
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
