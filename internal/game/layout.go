package game

import (
	"math/rand/v2"
)

// Shuffler is the randomness source used for mine placement.
// *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type entropySource struct{}

func (entropySource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// EntropySource returns the production randomness source, backed by the
// runtime-seeded generator of math/rand/v2.
func EntropySource() Shuffler { return entropySource{} }

// SeededSource returns a deterministic source. The same seed always yields
// the same layout for the same Config.
func SeededSource(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// neighborOffsets lists the 8-neighborhood as (dx, dy) pairs.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// mineCell marks a mine in Layout.cells. Non-mine cells hold their
// neighbor count 0..8.
const mineCell int8 = -1

// Layout is the hidden truth grid: mine positions plus, for every other
// cell, the number of adjacent mines. Immutable after construction.
//
// Cells are stored flat, indexed by x*width + y.
type Layout struct {
	cfg   Config
	cells []int8
}

// Generate places cfg.Mines() mines uniformly at random and derives
// neighbor counts.
//
// Every one of the C(width*height, mines) layouts is equally likely: the
// linear cell indices are shuffled and the first mines indices become mines.
func Generate(cfg Config, rng Shuffler) (*Layout, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	order := make([]int, cfg.Cells())
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	l := &Layout{cfg: cfg, cells: make([]int8, cfg.Cells())}
	for _, idx := range order[:cfg.Mines()] {
		l.cells[idx] = mineCell
	}
	l.countNeighbors()
	return l, nil
}

// LayoutFromMines builds a layout with mines at exactly the given (x, y)
// positions. The number of positions must equal cfg.Mines().
func LayoutFromMines(cfg Config, mines [][2]int) (*Layout, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(mines) != cfg.Mines() {
		return nil, newError(ErrCodeBadLayout, "config declares %d mines, layout has %d", cfg.Mines(), len(mines))
	}

	l := &Layout{cfg: cfg, cells: make([]int8, cfg.Cells())}
	for _, m := range mines {
		x, y := m[0], m[1]
		if !cfg.InBounds(x, y) {
			return nil, newCellError(ErrCodeBadLayout, x, y, "mine outside the board")
		}
		idx := l.index(x, y)
		if l.cells[idx] == mineCell {
			return nil, newCellError(ErrCodeBadLayout, x, y, "duplicate mine")
		}
		l.cells[idx] = mineCell
	}
	l.countNeighbors()
	return l, nil
}

// countNeighbors fills in the count for every non-mine cell. Runs once.
func (l *Layout) countNeighbors() {
	for x := 0; x < l.cfg.height; x++ {
		for y := 0; y < l.cfg.width; y++ {
			idx := l.index(x, y)
			if l.cells[idx] == mineCell {
				continue
			}
			var n int8
			l.eachNeighbor(x, y, func(nx, ny int) {
				if l.cells[l.index(nx, ny)] == mineCell {
					n++
				}
			})
			l.cells[idx] = n
		}
	}
}

func (l *Layout) index(x, y int) int { return x*l.cfg.width + y }

// eachNeighbor calls fn for every in-bounds neighbor of (x, y). Edges clip,
// they never wrap.
func (l *Layout) eachNeighbor(x, y int, fn func(nx, ny int)) {
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if l.cfg.InBounds(nx, ny) {
			fn(nx, ny)
		}
	}
}

// Config returns the configuration the layout was built for.
func (l *Layout) Config() Config { return l.cfg }

// IsMine reports whether (x, y) holds a mine. (x, y) must be in bounds.
func (l *Layout) IsMine(x, y int) bool { return l.cells[l.index(x, y)] == mineCell }

// Count returns the neighbor mine count of (x, y), or -1 for a mine.
// (x, y) must be in bounds.
func (l *Layout) Count(x, y int) int { return int(l.cells[l.index(x, y)]) }

// Mines returns all mine positions in row-major order.
func (l *Layout) Mines() [][2]int {
	out := make([][2]int, 0, l.cfg.mines)
	for idx, c := range l.cells {
		if c == mineCell {
			out = append(out, [2]int{idx / l.cfg.width, idx % l.cfg.width})
		}
	}
	return out
}
