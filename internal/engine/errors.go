package engine

import (
	"errors"
	"fmt"

	"github.com/roach88/minesweep/internal/game"
)

var (
	// ErrNoActiveGame is returned for moves and snapshots before any game
	// was started.
	ErrNoActiveGame = errors.New("no active game")

	// ErrStopped is returned once the session has been stopped.
	ErrStopped = errors.New("session stopped")
)

// MoveError wraps a rejected move with the session context it happened in.
// Unwrap exposes the underlying *game.Error, so errors.Is(err,
// game.ErrOutOfBounds) works on the value returned by Session.Apply.
type MoveError struct {
	GameID string
	Seq    int64
	Move   game.Move
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s rejected (game=%s, seq=%d): %v", e.Move, e.GameID, e.Seq, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

// IsRejected reports whether err is a rejected move, as opposed to a
// session-level failure (not started, stopped, context cancelled).
func IsRejected(err error) bool {
	var me *MoveError
	return errors.As(err, &me)
}
