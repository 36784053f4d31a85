package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/minesweep/internal/engine"
	"github.com/roach88/minesweep/internal/game"
	"github.com/roach88/minesweep/internal/testutil"
)

// runTimeout bounds a single scenario. Scenarios are small; hitting it
// means the session stopped answering.
const runTimeout = 30 * time.Second

// Harness runs scenarios against a fresh engine.Session each.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger routes session logs to logger. Default: discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// New creates a harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(context.Background(), scenario)
}

// Run executes a scenario and returns the result.
//
// Failed expectations are collected in Result.Errors. The error return is
// reserved for scenarios that cannot be run at all (bad fixed layout,
// session failure, timeout).
//
// Execution flow:
//  1. Build the shuffler: fixed placement from mines, or a seeded source
//  2. Start a fresh Session and the requested game
//  3. Feed each move through game.ParseMove and Session.Apply
//  4. Snapshot the final board and check final expectations
func (h *Harness) Run(ctx context.Context, s *Scenario) (*Result, error) {
	cfg := s.Config.GameConfig()
	rng, err := shufflerFor(s, cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	sess := engine.NewSession(
		engine.WithShuffler(rng),
		engine.WithIDGenerator(testutil.NewFixedIDGenerator(s.Name)),
		engine.WithLogger(h.logger.With("scenario", s.Name)),
	)
	go func() { _ = sess.Run(ctx) }()
	defer func() {
		sess.Stop()
		<-sess.Done()
	}()

	result := NewResult(s.Name, cfg)

	started, err := h.start(ctx, sess, s, result)
	if err != nil {
		return nil, err
	}
	if !started {
		return result, nil
	}

	for i, m := range s.Moves {
		st, err := h.move(ctx, sess, m)
		if err != nil {
			return nil, fmt.Errorf("moves[%d]: %w", i, err)
		}
		result.Steps = append(result.Steps, st)
		for _, e := range checkExpect(i, m.Expect, st) {
			result.AddError(e.Error())
		}
	}

	snap, err := sess.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("final snapshot: %w", err)
	}
	result.Started = true
	result.Status = snap.Status
	result.Revealed = snap.Revealed
	result.Flags = snap.Flags
	result.Board = BoardRows(snap.Tokens, cfg.Width())
	result.Solution = BoardRows(snap.Solution, cfg.Width())

	for _, e := range checkFinal(s.Final, result) {
		result.AddError(e.Error())
	}
	return result, nil
}

// start requests the game and checks start_error. Reports whether a game
// is running afterwards.
func (h *Harness) start(ctx context.Context, sess *engine.Session, s *Scenario, result *Result) (bool, error) {
	cfg := s.Config.GameConfig()
	reply, err := sess.Start(ctx, cfg)

	code := game.CodeOf(err)
	if err != nil && code == "" {
		return false, fmt.Errorf("start: %w", err)
	}

	st := Step{
		Seq:    reply.Seq,
		Kind:   "start",
		Input:  cfg.String(),
		Code:   code,
		Status: reply.Status,
	}
	result.Steps = append(result.Steps, st)
	for _, e := range checkStart(s, st) {
		result.AddError(e.Error())
	}

	h.logger.Debug("scenario started", "scenario", s.Name, "config", cfg.String(), "code", string(code))
	return err == nil, nil
}

// move parses and applies one move. Rejections are part of the step; only
// session failures are returned as errors.
func (h *Harness) move(ctx context.Context, sess *engine.Session, m MoveStep) (Step, error) {
	line := m.Line()
	st := Step{Kind: "move", Input: line}

	mv, err := game.ParseMove(line)
	if err != nil {
		st.Code = game.CodeOf(err)
		return st, nil
	}
	st.Move = mv

	reply, err := sess.Apply(ctx, mv)
	if err != nil && !engine.IsRejected(err) {
		return Step{}, err
	}

	st.Seq = reply.Seq
	st.Code = game.CodeOf(err)
	st.Outcome = reply.Result.Outcome
	st.NewlyRevealed = reply.Result.Revealed
	st.Status = reply.Status
	st.Revealed = reply.Revealed
	st.Flags = reply.Flags
	return st, nil
}

// shufflerFor picks the layout source for s.
func shufflerFor(s *Scenario, cfg game.Config) (game.Shuffler, error) {
	switch {
	case s.StartError != "":
		// The start is expected to fail before any layout is generated.
		return game.SeededSource(0), nil
	case len(s.Mines) > 0:
		l, err := game.LayoutFromMines(cfg, s.minePositions())
		if err != nil {
			return nil, fmt.Errorf("mines: %w", err)
		}
		return newPlacement(l), nil
	case s.Seed != nil:
		return game.SeededSource(*s.Seed), nil
	default:
		// No mines: every order gives the same layout.
		return game.SeededSource(0), nil
	}
}
