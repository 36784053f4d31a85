package testutil

import (
	"sync"

	"github.com/roach88/minesweep/internal/game"
)

// IdentityShuffler leaves the order untouched. With game.Generate this puts
// the mines on the first Mines() cells in row-major order, which makes a
// "random" layout fully predictable in tests.
//
// Implements game.Shuffler.
type IdentityShuffler struct{}

// Shuffle does nothing.
func (IdentityShuffler) Shuffle(n int, swap func(i, j int)) {}

// ReverseShuffler reverses the order, putting the mines on the last
// Mines() cells in row-major order.
//
// Implements game.Shuffler.
type ReverseShuffler struct{}

// Shuffle reverses indices 0..n-1.
func (ReverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

// CountingShuffler wraps another shuffler and counts calls.
//
// Thread-safety: Calls is safe for concurrent use via internal mutex.
type CountingShuffler struct {
	mu    sync.Mutex
	inner game.Shuffler
	calls int
}

// NewCountingShuffler wraps inner. A nil inner behaves like IdentityShuffler.
func NewCountingShuffler(inner game.Shuffler) *CountingShuffler {
	if inner == nil {
		inner = IdentityShuffler{}
	}
	return &CountingShuffler{inner: inner}
}

// Shuffle delegates to the wrapped shuffler.
func (c *CountingShuffler) Shuffle(n int, swap func(i, j int)) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	c.inner.Shuffle(n, swap)
}

// Calls returns how many layouts were generated through this shuffler.
func (c *CountingShuffler) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
