// Package engine runs a minesweeper game behind a single-writer session.
//
// The game package is not safe for concurrent use. A UI, a terminal loop or
// a test harness may all want to submit moves and read the board from
// different goroutines, so Session owns the one live game and serializes
// every request through a FIFO queue processed by Run.
//
// ARCHITECTURE:
//
// Single-Writer Loop:
//  1. Start/Apply/Snapshot enqueue a request carrying a reply channel
//  2. Run dequeues requests one at a time
//  3. process() applies the request to the live game to completion
//  4. The reply (status, display tokens, seq) is sent back to the caller
//
// Session State:
// The session is either notStarted or active(id, game). Moves and
// snapshots before the first Start return ErrNoActiveGame. Start replaces
// the active game wholesale; a failed Start leaves the old game in place.
//
// Every processed request is stamped with a seq from Clock, and every game
// gets an id from IDGenerator (UUIDv7 in production). Starts, terminal
// transitions and lifecycle events log at info; individual moves and
// rejections log at debug. WithLogger replaces slog.Default().
package engine
