package harness

import (
	"github.com/roach88/minesweep/internal/game"
)

// placement is a game.Shuffler that moves a fixed list of cell indices to
// the front of the order, in list order. game.Generate marks the first
// Mines() indices as mines, so a session using placement generates exactly
// the listed layout.
type placement struct {
	cells []int
}

// newPlacement builds a placement for the mines of l.
func newPlacement(l *game.Layout) placement {
	width := l.Config().Width()
	mines := l.Mines()
	cells := make([]int, len(mines))
	for i, m := range mines {
		cells[i] = m[0]*width + m[1]
	}
	return placement{cells: cells}
}

// Shuffle assumes the order starts as the identity 0..n-1.
func (p placement) Shuffle(n int, swap func(i, j int)) {
	order := make([]int, n)
	where := make([]int, n)
	for i := range order {
		order[i], where[i] = i, i
	}
	for k, idx := range p.cells {
		j := where[idx]
		if j == k {
			continue
		}
		swap(k, j)
		order[k], order[j] = order[j], order[k]
		where[order[k]], where[order[j]] = k, j
	}
}
