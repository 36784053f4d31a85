package game

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Action selects what a move does.
type Action uint8

const (
	ActionReveal Action = iota + 1
	ActionToggleFlag
)

func (a Action) String() string {
	switch a {
	case ActionReveal:
		return "reveal"
	case ActionToggleFlag:
		return "flag"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// Move is one request against the board. X is the row, Y the column.
type Move struct {
	X      int
	Y      int
	Action Action
}

func (m Move) String() string {
	return fmt.Sprintf("%s (%d,%d)", m.Action, m.X, m.Y)
}

// ParseAction maps an action token to an Action. "l" (left click) and
// "reveal" reveal; "r" (right click) and "flag" toggle a flag. Matching is
// case-insensitive.
func ParseAction(tok string) (Action, error) {
	switch strings.ToLower(normalizeToken(tok)) {
	case "l", "reveal":
		return ActionReveal, nil
	case "r", "flag":
		return ActionToggleFlag, nil
	}
	return 0, newFieldError(ErrCodeInvalidAction, "action", "invalid action %q, want l or r", tok)
}

// ParseMove parses a "x y action" line. Extra tokens are ignored.
// Malformed or missing tokens produce an error naming the field; it never
// panics on user input.
func ParseMove(line string) (Move, error) {
	fields := strings.Fields(normalizeToken(line))
	names := [3]string{"x", "y", "action"}
	if len(fields) < 3 {
		return Move{}, newFieldError(ErrCodeMissingToken, names[len(fields)], "expected \"x y action\", missing %s", names[len(fields)])
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil || x < 0 {
		return Move{}, newFieldError(ErrCodeXParse, "x", "failed to parse x %q", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil || y < 0 {
		return Move{}, newFieldError(ErrCodeYParse, "y", "failed to parse y %q", fields[1])
	}
	act, err := ParseAction(fields[2])
	if err != nil {
		return Move{}, err
	}
	return Move{X: x, Y: y, Action: act}, nil
}

// normalizeToken applies NFKC so that full-width digits and letters from
// IME input parse like their ASCII forms, then trims surrounding space.
func normalizeToken(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
