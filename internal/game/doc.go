// Package game implements the minesweeper engine: configuration parsing,
// mine layout generation, the display grid, flood-fill reveal, and the
// win/loss state machine.
//
// COORDINATES:
//
// x is the row in [0, height), y is the column in [0, width). Both the
// layout and the display grid are flat slices indexed by x*width + y, and
// every operation uses the same convention.
//
// MOVE FLOW:
//
//  1. Game.Apply rejects moves once the game is Won or Lost.
//  2. Flag toggles go to the display grid.
//  3. Reveals go through reveal(): bounds, flagged, revealed, mine, then
//     a single cell or an explicit-stack flood fill.
//  4. After every accepted move the win condition is re-evaluated:
//     revealed == width*height - mines. Flags are not required.
//
// INVARIANTS:
//   - The layout has exactly Mines() mines and is never modified.
//   - Display.revealed equals the number of Revealed cells.
//   - A rejected move mutates nothing.
//
// Game is single-writer. Concurrent callers go through engine.Session.
package game
