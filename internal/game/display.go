package game

import "strconv"

// CellState is the player-visible state of one cell.
type CellState uint8

const (
	Hidden CellState = iota
	Flagged
	Revealed
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// FlagToken is the exported token for a flagged cell.
const FlagToken = "F"

// DisplayCell is one cell of the display grid. Count is meaningful only
// when State is Revealed and mirrors the layout's neighbor count.
type DisplayCell struct {
	State CellState
	Count int
}

// Token renders the cell for export: "" when hidden, FlagToken when
// flagged, the decimal count when revealed ("0" is distinct from hidden).
func (c DisplayCell) Token() string {
	switch c.State {
	case Flagged:
		return FlagToken
	case Revealed:
		return strconv.Itoa(c.Count)
	default:
		return ""
	}
}

// Display is the mutable visibility grid plus the revealed tally.
//
// INVARIANT: revealed == number of cells whose State is Revealed.
type Display struct {
	cfg      Config
	cells    []DisplayCell
	revealed int
	flags    int
}

func newDisplay(cfg Config) *Display {
	return &Display{cfg: cfg, cells: make([]DisplayCell, cfg.Cells())}
}

func (d *Display) index(x, y int) int { return x*d.cfg.width + y }

// At returns the cell at (x, y). (x, y) must be in bounds.
func (d *Display) At(x, y int) DisplayCell { return d.cells[d.index(x, y)] }

// ToggleFlag flips Hidden and Flagged. A revealed cell cannot be flagged;
// the grid is left unchanged and ErrToggleOnRevealed is returned.
func (d *Display) ToggleFlag(x, y int) error {
	if !d.cfg.InBounds(x, y) {
		return newCellError(ErrCodeOutOfBounds, x, y, "cell outside the board")
	}
	c := &d.cells[d.index(x, y)]
	switch c.State {
	case Hidden:
		c.State = Flagged
		d.flags++
	case Flagged:
		c.State = Hidden
		d.flags--
	default:
		return newCellError(ErrCodeToggleOnRevealed, x, y, "cannot flag a revealed cell")
	}
	return nil
}

// revealOne reveals (x, y) with the given count if it is still Hidden.
// Reports whether the cell changed.
func (d *Display) revealOne(x, y, count int) bool {
	c := &d.cells[d.index(x, y)]
	if c.State != Hidden {
		return false
	}
	c.State = Revealed
	c.Count = count
	d.revealed++
	return true
}

// Revealed returns the number of revealed cells.
func (d *Display) Revealed() int { return d.revealed }

// Flags returns the number of flagged cells.
func (d *Display) Flags() int { return d.flags }

// Tokens exports the grid row-major, one token per cell.
func (d *Display) Tokens() []string {
	out := make([]string, len(d.cells))
	for i, c := range d.cells {
		out[i] = c.Token()
	}
	return out
}
