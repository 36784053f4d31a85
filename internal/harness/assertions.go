package harness

import (
	"fmt"
	"strings"
)

// AssertionError is a failed expectation, with enough context to debug
// it from test output alone.
type AssertionError struct {
	Where    string // "moves[3]", "start", "final"
	Field    string // "status", "revealed", "board" ...
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: %s: expected %s, got %s", e.Where, e.Field, e.Expected, e.Actual)
}

// checkStart compares the start step against the scenario's start_error.
func checkStart(s *Scenario, st Step) []error {
	got := string(st.Code)
	if got == s.StartError {
		return nil
	}
	return []error{&AssertionError{
		Where:    "start",
		Field:    "error",
		Expected: orNone(s.StartError),
		Actual:   orNone(got),
	}}
}

// checkExpect compares one move step against its expect clause.
func checkExpect(index int, e *Expect, st Step) []error {
	if e == nil {
		return nil
	}

	where := fmt.Sprintf("moves[%d]", index)
	var errs []error
	add := func(field, expected, actual string) {
		errs = append(errs, &AssertionError{Where: where, Field: field, Expected: expected, Actual: actual})
	}

	if got := string(st.Code); got != e.Error {
		add("error", orNone(e.Error), orNone(got))
		// A move that went the wrong way has nothing else worth comparing.
		return errs
	}
	if st.Seq == 0 {
		// Rejected by the parser: no board state to compare.
		return errs
	}

	if e.Outcome != "" && !st.Rejected() && e.Outcome != st.Outcome.String() {
		add("outcome", e.Outcome, st.Outcome.String())
	}
	if e.Status != "" && e.Status != st.Status.String() {
		add("status", e.Status, st.Status.String())
	}
	if e.Revealed != nil && *e.Revealed != st.Revealed {
		add("revealed", fmt.Sprint(*e.Revealed), fmt.Sprint(st.Revealed))
	}
	if e.Flags != nil && *e.Flags != st.Flags {
		add("flags", fmt.Sprint(*e.Flags), fmt.Sprint(st.Flags))
	}
	return errs
}

// checkFinal compares the end-of-scenario snapshot against final.
func checkFinal(f *FinalState, r *Result) []error {
	if f == nil {
		return nil
	}

	var errs []error
	add := func(field, expected, actual string) {
		errs = append(errs, &AssertionError{Where: "final", Field: field, Expected: expected, Actual: actual})
	}

	if f.Status != "" && f.Status != r.Status.String() {
		add("status", f.Status, r.Status.String())
	}
	if f.Revealed != nil && *f.Revealed != r.Revealed {
		add("revealed", fmt.Sprint(*f.Revealed), fmt.Sprint(r.Revealed))
	}
	if f.Flags != nil && *f.Flags != r.Flags {
		add("flags", fmt.Sprint(*f.Flags), fmt.Sprint(r.Flags))
	}
	if len(f.Board) > 0 {
		for i := range f.Board {
			if i >= len(r.Board) || f.Board[i] != r.Board[i] {
				add("board", formatRows(f.Board), formatRows(r.Board))
				break
			}
		}
	}
	return errs
}

func formatRows(rows []string) string {
	return "[" + strings.Join(rows, " ") + "]"
}

func orNone(code string) string {
	if code == "" {
		return "no error"
	}
	return code
}
