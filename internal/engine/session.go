package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/roach88/minesweep/internal/game"
)

// state is either notStarted or active. There is no placeholder game:
// before the first Start the session simply has nothing to play.
type state interface {
	isState()
}

type notStarted struct{}

type active struct {
	id   string
	game *game.Game
}

func (notStarted) isState() {}
func (active) isState()     {}

// Reply is the answer to one request.
type Reply struct {
	// GameID identifies the game the request ran against.
	GameID string
	// Seq orders replies across the whole session.
	Seq    int64
	Config game.Config
	// Result is set for accepted moves.
	Result   game.MoveResult
	Status   game.Status
	Revealed int
	Flags    int
	// Tokens is the row-major display export after the request.
	Tokens []string
	// Solution is the mine map, only once the game is over.
	Solution []string
	Err      error
}

// Session owns the single live game and applies requests to it one at a
// time, in arrival order, on the goroutine running Run.
//
// Thread-safety model:
//   - Start, Apply, Snapshot: safe from any goroutine
//   - Run: must be called from exactly one goroutine
//   - Stop: safe from any goroutine, idempotent
//
// Because only Run touches the game, a Snapshot can never observe a flood
// fill half way through.
type Session struct {
	queue  *requestQueue
	clock  *Clock
	ids    IDGenerator
	rng    game.Shuffler
	logger *slog.Logger

	state state // owned by Run

	done     chan struct{}
	doneOnce sync.Once
}

// Option configures a Session.
type Option func(*Session)

// WithShuffler sets the randomness source for mine placement.
// Default: game.EntropySource().
func WithShuffler(rng game.Shuffler) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithIDGenerator sets the game id generator. Default: UUIDv7Generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Session) {
		s.ids = ids
	}
}

// WithLogger sets the logger for session events. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session with no active game.
func NewSession(opts ...Option) *Session {
	s := &Session{
		queue:  newRequestQueue(),
		clock:  NewClock(),
		ids:    UUIDv7Generator{},
		rng:    game.EntropySource(),
		logger: slog.Default(),
		state:  notStarted{},
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes requests until ctx is cancelled or Stop is called.
// Requests still queued when Stop is called are processed before Run
// returns; on cancellation they are answered with ErrStopped.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session starting")
	defer s.finish()

	for {
		if req, ok := s.queue.TryDequeue(); ok {
			req.reply <- s.process(req)
			continue
		}

		if s.queue.Drained() {
			s.logger.Info("session stopping: queue closed")
			return nil
		}

		select {
		case <-ctx.Done():
			s.logger.Info("session stopping: context cancelled")
			s.queue.Close()
			return ctx.Err()
		case <-s.queue.Wait():
			// Loop back to TryDequeue. A closed queue keeps firing here
			// until Drained reports true.
		}
	}
}

// finish marks the session done and answers anything left in the queue.
func (s *Session) finish() {
	s.doneOnce.Do(func() {
		for {
			req, ok := s.queue.TryDequeue()
			if !ok {
				break
			}
			req.reply <- Reply{Err: ErrStopped}
		}
		close(s.done)
	})
}

// Stop closes the queue. Run returns once pending requests are handled.
func (s *Session) Stop() {
	s.queue.Close()
}

// Done is closed when Run has returned.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Start replaces the live game, if any, with a new one for cfg.
// On error (e.g. too many mines) the previous game stays active.
func (s *Session) Start(ctx context.Context, cfg game.Config) (Reply, error) {
	return s.submit(ctx, request{kind: requestStart, cfg: cfg})
}

// Apply applies m to the live game.
//
// A rejected move returns a *MoveError wrapping the *game.Error. Hitting a
// mine is not an error; check Reply.Status.
func (s *Session) Apply(ctx context.Context, m game.Move) (Reply, error) {
	return s.submit(ctx, request{kind: requestMove, move: m})
}

// Snapshot returns the current display grid and status without mutating.
func (s *Session) Snapshot(ctx context.Context) (Reply, error) {
	return s.submit(ctx, request{kind: requestSnapshot})
}

func (s *Session) submit(ctx context.Context, req request) (Reply, error) {
	req.reply = make(chan Reply, 1)
	if !s.queue.Enqueue(req) {
		return Reply{}, ErrStopped
	}

	select {
	case r := <-req.reply:
		return r, r.Err
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	case <-s.done:
		// Run may have answered just before finishing.
		select {
		case r := <-req.reply:
			return r, r.Err
		default:
			return Reply{}, ErrStopped
		}
	}
}

// process handles one request. Called only from Run.
func (s *Session) process(req request) Reply {
	seq := s.clock.Next()

	switch req.kind {
	case requestStart:
		return s.start(seq, req.cfg)
	case requestMove:
		return s.move(seq, req.move)
	case requestSnapshot:
		a, ok := s.state.(active)
		if !ok {
			return Reply{Seq: seq, Err: ErrNoActiveGame}
		}
		return snapshot(seq, a)
	default:
		return Reply{Seq: seq, Err: fmt.Errorf("unknown request kind: %d", req.kind)}
	}
}

func (s *Session) start(seq int64, cfg game.Config) Reply {
	g, err := game.New(cfg, s.rng)
	if err != nil {
		s.logger.Warn("start rejected", "seq", seq, "config", cfg.String(), "error", err)
		return Reply{Seq: seq, Err: fmt.Errorf("start game: %w", err)}
	}

	a := active{id: s.ids.Generate(), game: g}
	s.state = a
	s.logger.Info("game started",
		"game_id", a.id,
		"seq", seq,
		"width", cfg.Width(),
		"height", cfg.Height(),
		"mines", cfg.Mines(),
	)
	return snapshot(seq, a)
}

func (s *Session) move(seq int64, m game.Move) Reply {
	a, ok := s.state.(active)
	if !ok {
		return Reply{Seq: seq, Err: ErrNoActiveGame}
	}

	res, err := a.game.Apply(m)
	if err != nil {
		s.logger.Debug("move rejected",
			"game_id", a.id,
			"seq", seq,
			"move", m.String(),
			"code", string(game.CodeOf(err)),
		)
		r := snapshot(seq, a)
		r.Err = &MoveError{GameID: a.id, Seq: seq, Move: m, Err: err}
		return r
	}

	s.logger.Debug("move applied",
		"game_id", a.id,
		"seq", seq,
		"move", m.String(),
		"outcome", res.Outcome.String(),
		"revealed", res.Revealed,
	)
	if res.Status.IsTerminal() {
		s.logger.Info("game over",
			"game_id", a.id,
			"seq", seq,
			"status", res.Status.String(),
			"revealed", a.game.Revealed(),
		)
	}

	r := snapshot(seq, a)
	r.Result = res
	return r
}

func snapshot(seq int64, a active) Reply {
	r := Reply{
		GameID:   a.id,
		Seq:      seq,
		Config:   a.game.Config(),
		Status:   a.game.Status(),
		Revealed: a.game.Revealed(),
		Flags:    a.game.Flags(),
		Tokens:   a.game.Tokens(),
	}
	if sol, err := a.game.Solution(); err == nil {
		r.Solution = sol
	}
	return r
}
