// Package harness runs scripted minesweeper games as conformance tests.
//
// A scenario pins down a board (fixed mine positions or a seed), plays a
// list of moves through a real engine.Session, and checks what came back.
// Every run also produces a plain-text trace that is compared against a
// golden file, so a change in flood fill, win detection or error ordering
// shows up as a diff.
//
// # Scenario Format
//
//	name: flood_frontier
//	description: "Flood fill stops at the numbered frontier"
//	config: { width: 4, height: 3, mines: 3 }
//	mines: [[0, 2], [1, 2], [2, 2]]   # or: seed: 42
//	moves:
//	  - { x: 0, y: 0, action: l, expect: { revealed: 6 } }
//	  - { x: 0, y: 3, action: r }
//	  - { x: 0, y: 3, action: l, expect: { error: CLICK_ON_FLAGGED } }
//	final:
//	  status: in_progress
//	  board: ["02.F", "03..", "02.."]
//
// A scenario that only checks configuration validation sets start_error
// and no moves:
//
//	name: too_many_mines
//	config: { width: 2, height: 2, mines: 5 }
//	start_error: TOO_MANY_MINES
//
// Moves are fed through game.ParseMove as "x y action" lines, so action
// tokens and negative coordinates are checked exactly as typed input is.
//
// # Board Rows
//
// Rows in final.board and in traces use one character per cell:
// '.' hidden, 'F' flagged, '0'..'8' revealed. Solution rows use '*' for
// mines.
//
// # Validation
//
// LoadScenario decodes with unknown fields rejected, then checks the
// result against an embedded CUE schema (see schema.cue) before the
// cross-field rules (mines vs seed, start_error vs moves) are applied.
//
// # Deterministic Testing
//
// Fixed layouts are fed to the engine through a Shuffler that moves the
// listed cells to the front, so the session generates exactly that board.
// The game id is always the scenario name (testutil.FixedIDGenerator).
package harness
