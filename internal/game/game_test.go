package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedGame(t *testing.T, width, height int, mines ...[2]int) *Game {
	t.Helper()
	l, err := LayoutFromMines(NewConfig(width, height, len(mines)), mines)
	require.NoError(t, err)
	return NewWithLayout(l)
}

func revealAt(x, y int) Move { return Move{X: x, Y: y, Action: ActionReveal} }
func flagAt(x, y int) Move   { return Move{X: x, Y: y, Action: ActionToggleFlag} }

func TestGame_ZeroMinesWinsInOneMove(t *testing.T) {
	g, err := New(NewConfig(3, 3, 0), EntropySource())
	require.NoError(t, err)

	res, err := g.Apply(revealAt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, Won, res.Status)
	assert.Equal(t, 9, res.Revealed)
	assert.Equal(t, Won, g.Status())
	for _, tok := range g.Tokens() {
		assert.Equal(t, "0", tok)
	}
}

func TestGame_SingleCellWin(t *testing.T) {
	g, err := New(NewConfig(1, 1, 0), EntropySource())
	require.NoError(t, err)

	_, err = g.Apply(revealAt(0, 0))
	require.NoError(t, err)

	cell, err := g.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, DisplayCell{State: Revealed, Count: 0}, cell)
	assert.Equal(t, Won, g.Status())
}

func TestGame_FlagProtectsMine(t *testing.T) {
	g := newFixedGame(t, 3, 3, [2]int{0, 0})

	_, err := g.Apply(flagAt(0, 0))
	require.NoError(t, err)
	before := g.Tokens()

	_, err = g.Apply(revealAt(0, 0))
	require.Error(t, err)
	assert.Equal(t, ErrCodeClickOnFlagged, CodeOf(err))
	assert.Equal(t, InProgress, g.Status())
	assert.Equal(t, before, g.Tokens())
}

func TestGame_MineHitLoses(t *testing.T) {
	g := newFixedGame(t, 3, 3, [2]int{1, 1})

	res, err := g.Apply(revealAt(1, 1))
	require.NoError(t, err, "losing is a valid outcome, not an error")
	assert.Equal(t, OutcomeMineHit, res.Outcome)
	assert.Equal(t, Lost, res.Status)
	assert.Equal(t, Lost, g.Status())
	assert.Equal(t, 0, g.Revealed())
}

func TestGame_RevealTwiceIsRejected(t *testing.T) {
	g := newFixedGame(t, 3, 3, [2]int{2, 2})

	_, err := g.Apply(revealAt(1, 1))
	require.NoError(t, err)
	before := g.Tokens()

	_, err = g.Apply(revealAt(1, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrClickOnRevealed))
	assert.Equal(t, 1, g.Revealed())
	assert.Equal(t, before, g.Tokens())
}

func TestGame_ToggleOnRevealed(t *testing.T) {
	g := newFixedGame(t, 3, 3, [2]int{2, 2})
	_, err := g.Apply(revealAt(1, 1))
	require.NoError(t, err)
	before := g.Tokens()

	_, err = g.Apply(flagAt(1, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToggleOnRevealed))
	assert.Equal(t, before, g.Tokens())
}

func TestGame_OutOfBounds(t *testing.T) {
	g := newFixedGame(t, 4, 2, [2]int{0, 0})

	cells := [][2]int{{2, 0}, {0, 4}, {-1, 0}, {0, -1}, {10, 10}}
	for _, c := range cells {
		for _, m := range []Move{revealAt(c[0], c[1]), flagAt(c[0], c[1])} {
			_, err := g.Apply(m)
			require.Error(t, err, "move %s", m)
			assert.True(t, errors.Is(err, ErrOutOfBounds), "move %s", m)
		}
	}
	assert.Equal(t, InProgress, g.Status())
	assert.Equal(t, 0, g.Revealed())
	assert.Equal(t, 0, g.Flags())
}

func TestGame_WinDoesNotRequireFlags(t *testing.T) {
	g := newFixedGame(t, 3, 3, [2]int{0, 0})

	// Reveal every safe cell one by one without flagging the mine.
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if x == 0 && y == 0 {
				continue
			}
			if cell, _ := g.Cell(x, y); cell.State == Revealed {
				continue
			}
			_, err := g.Apply(revealAt(x, y))
			require.NoError(t, err)
		}
	}
	assert.Equal(t, Won, g.Status())
	assert.Equal(t, 8, g.Revealed())
}

func TestGame_FloodFillWinsAroundMine(t *testing.T) {
	g := newFixedGame(t, 3, 3, [2]int{2, 2})

	res, err := g.Apply(revealAt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 8, res.Revealed)
	assert.Equal(t, Won, res.Status)
}

func TestGame_RejectsMovesAfterTerminal(t *testing.T) {
	g := newFixedGame(t, 2, 1, [2]int{0, 0})
	_, err := g.Apply(revealAt(0, 0))
	require.NoError(t, err)
	require.Equal(t, Lost, g.Status())

	for _, m := range []Move{revealAt(0, 1), flagAt(0, 1), revealAt(5, 5)} {
		res, err := g.Apply(m)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGameOver))
		assert.Equal(t, Lost, res.Status)
	}
	assert.Equal(t, []string{"", ""}, g.Tokens())
}

func TestGame_InvalidAction(t *testing.T) {
	g := newFixedGame(t, 2, 2)

	_, err := g.Apply(Move{X: 0, Y: 0, Action: Action(9)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAction))
	assert.Equal(t, 0, g.Revealed())
}

func TestGame_FlagAfterFlagRoundTrip(t *testing.T) {
	g := newFixedGame(t, 3, 3)
	_, err := g.Apply(flagAt(1, 1))
	require.NoError(t, err)

	res, err := g.Apply(revealAt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 8, res.Revealed)
	assert.Equal(t, InProgress, res.Status, "flagged safe cell is still hidden")

	_, err = g.Apply(flagAt(1, 1))
	require.NoError(t, err)
	res, err = g.Apply(revealAt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, Won, res.Status)
}

func TestGame_Solution(t *testing.T) {
	g := newFixedGame(t, 2, 2, [2]int{0, 1})

	_, err := g.Solution()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGameInProgress))

	_, err = g.Apply(revealAt(0, 1))
	require.NoError(t, err)

	sol, err := g.Solution()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", MineToken, "1", "1"}, sol)
}

func TestGame_String(t *testing.T) {
	g := newFixedGame(t, 3, 2, [2]int{1, 2})
	_, err := g.Apply(revealAt(0, 0))
	require.NoError(t, err)
	_, err = g.Apply(flagAt(1, 2))
	require.NoError(t, err)

	assert.Equal(t, " 0  1  * \n 0  1  F \n", g.String())
}

func TestNew_PropagatesLayoutErrors(t *testing.T) {
	_, err := New(NewConfig(2, 2, 5), EntropySource())
	assert.True(t, errors.Is(err, ErrTooManyMines))

	_, err = New(NewConfig(0, 0, 0), EntropySource())
	assert.True(t, errors.Is(err, ErrEmptyBoard))
}
