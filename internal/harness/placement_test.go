package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/minesweep/internal/game"
)

func TestPlacement_GeneratesListedLayout(t *testing.T) {
	tests := []struct {
		name  string
		cfg   game.Config
		mines [][2]int
	}{
		{"single", game.NewConfig(3, 3, 1), [][2]int{{1, 1}}},
		{"front cells", game.NewConfig(3, 3, 2), [][2]int{{0, 0}, {0, 1}}},
		{"reversed", game.NewConfig(4, 2, 3), [][2]int{{1, 3}, {0, 2}, {0, 0}}},
		{"overlapping swaps", game.NewConfig(2, 2, 2), [][2]int{{0, 1}, {0, 0}}},
		{"full board", game.NewConfig(2, 2, 4), [][2]int{{1, 1}, {1, 0}, {0, 1}, {0, 0}}},
		{"no mines", game.NewConfig(2, 2, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := game.LayoutFromMines(tt.cfg, tt.mines)
			require.NoError(t, err)

			got, err := game.Generate(tt.cfg, newPlacement(want))
			require.NoError(t, err)

			assert.ElementsMatch(t, want.Mines(), got.Mines())
			for x := 0; x < tt.cfg.Height(); x++ {
				for y := 0; y < tt.cfg.Width(); y++ {
					assert.Equal(t, want.Count(x, y), got.Count(x, y), "count at (%d,%d)", x, y)
				}
			}
		})
	}
}
