package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/minesweep/internal/game"
)

// Step records one request made while running a scenario.
type Step struct {
	// Seq is the session seq of the request, 0 for input that was
	// rejected before reaching the session.
	Seq int64

	// Kind is "start" or "move".
	Kind string

	// Input is the move line as typed, or the config for a start.
	Input string

	// Move is the parsed move. Zero for starts and parse failures.
	Move game.Move

	// Code is the rejection code, empty if accepted.
	Code game.ErrorCode

	// Outcome and NewlyRevealed describe an accepted move.
	Outcome       game.Outcome
	NewlyRevealed int

	// Board state after the request.
	Status   game.Status
	Revealed int
	Flags    int
}

// Rejected reports whether the request was refused.
func (s Step) Rejected() bool { return s.Code != "" }

// Result is the outcome of a scenario execution.
type Result struct {
	// Name is the scenario name.
	Name string

	// Config is the board the scenario started.
	Config game.Config

	// Pass is true if every expectation matched.
	Pass bool

	// Steps holds every request in order.
	Steps []Step

	// Errors contains failed expectations. Empty if Pass is true.
	Errors []string

	// Started reports whether a game was running at the end. The fields
	// below are only set when it is true.
	Started  bool
	Status   game.Status
	Revealed int
	Flags    int
	Board    []string
	Solution []string
}

// NewResult creates a passing result for the named scenario.
func NewResult(name string, cfg game.Config) *Result {
	return &Result{
		Name:   name,
		Config: cfg,
		Pass:   true,
		Steps:  []Step{},
		Errors: []string{},
	}
}

// AddError records a failed expectation and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Trace renders the result as text. The format is stable; golden files
// depend on it.
func (r *Result) Trace() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.Name)
	fmt.Fprintf(&b, "config: %s\n", r.Config)

	for _, s := range r.Steps {
		b.WriteString(s.traceLine())
		b.WriteByte('\n')
	}

	if !r.Started {
		return b.String()
	}
	fmt.Fprintf(&b, "final: status=%s revealed=%d flags=%d\n", r.Status, r.Revealed, r.Flags)
	b.WriteString("board:\n")
	for _, row := range r.Board {
		fmt.Fprintf(&b, "  %s\n", row)
	}
	if len(r.Solution) > 0 {
		b.WriteString("solution:\n")
		for _, row := range r.Solution {
			fmt.Fprintf(&b, "  %s\n", row)
		}
	}
	return b.String()
}

func (s Step) traceLine() string {
	if s.Kind == "start" {
		if s.Rejected() {
			return fmt.Sprintf("seq=%d start %s -> rejected %s", s.Seq, s.Input, s.Code)
		}
		return fmt.Sprintf("seq=%d start %s -> status=%s", s.Seq, s.Input, s.Status)
	}

	if s.Seq == 0 {
		return fmt.Sprintf("seq=- %q -> rejected %s", s.Input, s.Code)
	}

	var effect string
	switch {
	case s.Rejected():
		effect = "rejected " + string(s.Code)
	case s.Outcome == game.OutcomeRevealed:
		effect = fmt.Sprintf("revealed +%d", s.NewlyRevealed)
	default:
		effect = s.Outcome.String()
	}
	return fmt.Sprintf("seq=%d %s -> %s | status=%s revealed=%d flags=%d",
		s.Seq, s.Move, effect, s.Status, s.Revealed, s.Flags)
}

// BoardRows renders row-major display tokens one character per cell:
// '.' hidden, 'F' flagged, digits for revealed counts. Solution tokens
// render the same way, with '*' for mines.
func BoardRows(tokens []string, width int) []string {
	if width == 0 || len(tokens) == 0 {
		return nil
	}
	rows := make([]string, 0, len(tokens)/width)
	var b strings.Builder
	for i, tok := range tokens {
		if tok == "" {
			b.WriteByte('.')
		} else {
			b.WriteString(tok)
		}
		if (i+1)%width == 0 {
			rows = append(rows, b.String())
			b.Reset()
		}
	}
	return rows
}
