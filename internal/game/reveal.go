package game

// Outcome is the result of a reveal that was not rejected.
type Outcome uint8

const (
	// OutcomeNone is used for moves that reveal nothing (flag toggles).
	OutcomeNone Outcome = iota
	// OutcomeMineHit means the revealed cell was a mine.
	OutcomeMineHit
	// OutcomeRevealed means one or more safe cells were revealed.
	OutcomeRevealed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMineHit:
		return "mine_hit"
	case OutcomeRevealed:
		return "revealed"
	default:
		return "none"
	}
}

// reveal applies a reveal at (x, y). Checks run in order: bounds, flagged,
// already revealed, mine. A rejected reveal leaves the display untouched.
//
// On a mine the display is not modified; the caller ends the game.
// Otherwise the cell is revealed and, if its count is zero, the connected
// zero region is flooded together with its numbered frontier.
//
// Returns the number of cells newly revealed.
func reveal(l *Layout, d *Display, x, y int) (Outcome, int, error) {
	if !l.cfg.InBounds(x, y) {
		return OutcomeNone, 0, newCellError(ErrCodeOutOfBounds, x, y, "cell outside the board")
	}
	switch d.At(x, y).State {
	case Flagged:
		return OutcomeNone, 0, newCellError(ErrCodeClickOnFlagged, x, y, "cannot reveal a flagged cell")
	case Revealed:
		return OutcomeNone, 0, newCellError(ErrCodeClickOnRevealed, x, y, "cell already revealed")
	}
	if l.IsMine(x, y) {
		return OutcomeMineHit, 0, nil
	}
	return OutcomeRevealed, flood(l, d, x, y), nil
}

// flood reveals (x, y) and, while the popped cell has count zero, every
// Hidden neighbor. A cell is marked Revealed before it is pushed, so the
// Revealed state doubles as the visited set and no cell is pushed twice.
// Flagged cells are never entered.
//
// (x, y) must be in bounds, Hidden and not a mine.
func flood(l *Layout, d *Display, x, y int) int {
	type pos struct{ x, y int }

	n := 0
	if !d.revealOne(x, y, l.Count(x, y)) {
		return 0
	}
	n++

	stack := []pos{{x, y}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if l.Count(cur.x, cur.y) != 0 {
			continue
		}
		l.eachNeighbor(cur.x, cur.y, func(nx, ny int) {
			// A zero cell has no mine neighbors, so every neighbor is safe.
			if d.revealOne(nx, ny, l.Count(nx, ny)) {
				n++
				stack = append(stack, pos{nx, ny})
			}
		})
	}
	return n
}
