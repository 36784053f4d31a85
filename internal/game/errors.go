package game

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes every error the game package can return.
type ErrorCode string

const (
	// Configuration errors.
	ErrCodeArgCount     ErrorCode = "ARG_COUNT"
	ErrCodeWidthParse   ErrorCode = "WIDTH_PARSE"
	ErrCodeHeightParse  ErrorCode = "HEIGHT_PARSE"
	ErrCodeMinesParse   ErrorCode = "MINES_PARSE"
	ErrCodeTooManyMines ErrorCode = "TOO_MANY_MINES"
	ErrCodeEmptyBoard   ErrorCode = "EMPTY_BOARD"
	ErrCodeBoardTooBig  ErrorCode = "BOARD_TOO_BIG"
	ErrCodeBadLayout    ErrorCode = "BAD_LAYOUT"

	// Move errors.
	ErrCodeOutOfBounds      ErrorCode = "OUT_OF_BOUNDS"
	ErrCodeClickOnFlagged   ErrorCode = "CLICK_ON_FLAGGED"
	ErrCodeClickOnRevealed  ErrorCode = "CLICK_ON_REVEALED"
	ErrCodeToggleOnRevealed ErrorCode = "TOGGLE_ON_REVEALED"
	ErrCodeInvalidAction    ErrorCode = "INVALID_ACTION"
	ErrCodeXParse           ErrorCode = "X_PARSE"
	ErrCodeYParse           ErrorCode = "Y_PARSE"
	ErrCodeMissingToken     ErrorCode = "MISSING_TOKEN"
	ErrCodeGameOver         ErrorCode = "GAME_OVER"
	ErrCodeGameInProgress   ErrorCode = "GAME_IN_PROGRESS"
)

// Error is the single error type returned by this package.
//
// Callers classify errors by code, either with CodeOf or with errors.Is
// against one of the sentinel values below:
//
//	if errors.Is(err, game.ErrClickOnFlagged) { ... }
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Field names the offending input token for parse errors.
	Field string

	// X and Y locate the offending cell for move errors.
	X, Y int

	hasCell bool
}

// Sentinels for errors.Is. Only the Code is compared.
var (
	ErrArgCount         = &Error{Code: ErrCodeArgCount}
	ErrWidthParse       = &Error{Code: ErrCodeWidthParse}
	ErrHeightParse      = &Error{Code: ErrCodeHeightParse}
	ErrMinesParse       = &Error{Code: ErrCodeMinesParse}
	ErrTooManyMines     = &Error{Code: ErrCodeTooManyMines}
	ErrEmptyBoard       = &Error{Code: ErrCodeEmptyBoard}
	ErrBoardTooBig      = &Error{Code: ErrCodeBoardTooBig}
	ErrBadLayout        = &Error{Code: ErrCodeBadLayout}
	ErrOutOfBounds      = &Error{Code: ErrCodeOutOfBounds}
	ErrClickOnFlagged   = &Error{Code: ErrCodeClickOnFlagged}
	ErrClickOnRevealed  = &Error{Code: ErrCodeClickOnRevealed}
	ErrToggleOnRevealed = &Error{Code: ErrCodeToggleOnRevealed}
	ErrInvalidAction    = &Error{Code: ErrCodeInvalidAction}
	ErrXParse           = &Error{Code: ErrCodeXParse}
	ErrYParse           = &Error{Code: ErrCodeYParse}
	ErrMissingToken     = &Error{Code: ErrCodeMissingToken}
	ErrGameOver         = &Error{Code: ErrCodeGameOver}
	ErrGameInProgress   = &Error{Code: ErrCodeGameInProgress}
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.hasCell:
		return fmt.Sprintf("%s: %s (x=%d, y=%d)", e.Code, e.Message, e.X, e.Y)
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return string(e.Code)
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the error code from err.
// Returns "" if err is nil or not a game error.
func CodeOf(err error) ErrorCode {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ""
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func newFieldError(code ErrorCode, field, format string, args ...any) *Error {
	return &Error{Code: code, Field: field, Message: fmt.Sprintf(format, args...)}
}

func newCellError(code ErrorCode, x, y int, message string) *Error {
	return &Error{Code: code, Message: message, X: x, Y: y, hasCell: true}
}
