package game

import (
	"fmt"
	"strconv"
)

// MaxCells bounds width*height so that layout allocation stays sane and
// cell arithmetic cannot overflow.
const MaxCells = 1 << 24

// Config is the immutable board configuration: width (columns), height
// (rows), and mine count.
//
// A Config from ParseConfig has only passed syntactic checks. Semantic checks
// (mines <= width*height, non-empty board) happen in Generate.
type Config struct {
	width  int
	height int
	mines  int
}

// NewConfig builds a Config from integers. No validation is performed.
func NewConfig(width, height, mines int) Config {
	return Config{width: width, height: height, mines: mines}
}

// ParseConfig parses exactly three tokens (width, height, mines) into a Config.
//
// Each token must be a non-negative decimal integer. A failure names the
// field that failed: ErrWidthParse, ErrHeightParse or ErrMinesParse.
func ParseConfig(args []string) (Config, error) {
	if len(args) != 3 {
		return Config{}, newError(ErrCodeArgCount, "expected 3 arguments (width height mines), got %d", len(args))
	}

	width, err := parseCount(args[0])
	if err != nil {
		return Config{}, newFieldError(ErrCodeWidthParse, "width", "failed to parse width %q", args[0])
	}
	height, err := parseCount(args[1])
	if err != nil {
		return Config{}, newFieldError(ErrCodeHeightParse, "height", "failed to parse height %q", args[1])
	}
	mines, err := parseCount(args[2])
	if err != nil {
		return Config{}, newFieldError(ErrCodeMinesParse, "mines", "failed to parse mines %q", args[2])
	}

	return Config{width: width, height: height, mines: mines}, nil
}

// parseCount parses a non-negative decimal integer that fits in an int.
func parseCount(tok string) (int, error) {
	n, err := strconv.ParseUint(normalizeToken(tok), 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (c Config) Width() int  { return c.width }
func (c Config) Height() int { return c.height }
func (c Config) Mines() int  { return c.mines }

// Cells returns width*height. Only meaningful for a validated config.
func (c Config) Cells() int { return c.width * c.height }

// SafeCells returns the number of non-mine cells; revealing all of them wins.
func (c Config) SafeCells() int { return c.Cells() - c.mines }

// InBounds reports whether (x, y) addresses a cell: x is the row in
// [0, height), y is the column in [0, width).
func (c Config) InBounds(x, y int) bool {
	return x >= 0 && x < c.height && y >= 0 && y < c.width
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d/%d", c.width, c.height, c.mines)
}

// validate performs the checks deferred from ParseConfig.
func (c Config) validate() error {
	if c.width <= 0 || c.height <= 0 {
		return newError(ErrCodeEmptyBoard, "board must have at least one row and one column, got %dx%d", c.width, c.height)
	}
	if c.width > MaxCells/c.height {
		return newError(ErrCodeBoardTooBig, "board %dx%d exceeds %d cells", c.width, c.height, MaxCells)
	}
	if c.mines < 0 || c.mines > c.Cells() {
		return newError(ErrCodeTooManyMines, "%d mines do not fit on a %dx%d board", c.mines, c.width, c.height)
	}
	return nil
}
