package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/minesweep/internal/engine"
	"github.com/roach88/minesweep/internal/game"
	"github.com/roach88/minesweep/internal/harness"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	Seed uint64

	// IDGenerator allows overriding the game id generator (for testing).
	// If nil, defaults to engine.UUIDv7Generator.
	IDGenerator engine.IDGenerator
}

// BoardView is the JSON payload for one board update.
type BoardView struct {
	GameID   string   `json:"game_id"`
	Seq      int64    `json:"seq"`
	Move     string   `json:"move,omitempty"`
	Outcome  string   `json:"outcome,omitempty"`
	Status   string   `json:"status"`
	Revealed int      `json:"revealed"`
	Flags    int      `json:"flags"`
	Rows     []string `json:"rows"`
	Solution []string `json:"solution,omitempty"`
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	return newPlayCommand(&PlayOptions{RootOptions: rootOpts})
}

func newPlayCommand(opts *PlayOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <width> <height> <mines>",
		Short: "Play a game, reading moves from stdin",
		Long: `Start a game and read moves from stdin, one per line:

  <x> <y> <action>

x is the row (0 at the top), y is the column (0 at the left). action is
l to reveal a cell or r to toggle a flag ("reveal" and "flag" also work).
The board is printed after every move. Malformed or illegal moves are
reported and the game waits for the next line.

Exit codes:
  0 - Game won
  1 - Game lost, or input ended before the game was over
  2 - Command error (bad board arguments, etc.)

Examples:
  minesweep play 9 9 10
  minesweep play 16 16 40 --seed 42
  printf '0 0 l\n' | minesweep play 3 3 0 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, args, cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for a reproducible layout (default: random)")

	return cmd
}

func runPlay(opts *PlayOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	cfg, err := game.ParseConfig(args)
	if err != nil {
		_ = formatter.GameError(err, nil)
		return WrapExitError(ExitCommandError, "invalid board", err)
	}

	sessOpts := []engine.Option{engine.WithLogger(logger)}
	if cmd.Flags().Changed("seed") {
		sessOpts = append(sessOpts, engine.WithShuffler(game.SeededSource(opts.Seed)))
	}
	if opts.IDGenerator != nil {
		sessOpts = append(sessOpts, engine.WithIDGenerator(opts.IDGenerator))
	}
	sess := engine.NewSession(sessOpts...)

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() { _ = sess.Run(ctx) }()
	defer func() {
		sess.Stop()
		<-sess.Done()
	}()

	reply, err := sess.Start(ctx, cfg)
	if err != nil {
		_ = formatter.GameError(err, nil)
		return WrapExitError(ExitCommandError, "failed to start game", err)
	}
	if err := printBoard(formatter, reply, ""); err != nil {
		return err
	}

	status, err := playLoop(ctx, sess, cmd.InOrStdin(), formatter)
	if err != nil {
		return WrapExitError(ExitFailure, "game interrupted", err)
	}

	switch status {
	case game.Won:
		if formatter.Format != "json" {
			fmt.Fprintln(formatter.Writer, "✓ You won!")
		}
		return nil
	case game.Lost:
		if formatter.Format != "json" {
			fmt.Fprintln(formatter.Writer, "✗ Boom. You hit a mine.")
		}
		return NewExitError(ExitFailure, "game lost")
	default:
		if formatter.Format != "json" {
			fmt.Fprintln(formatter.Writer, "Game abandoned.")
		}
		return NewExitError(ExitFailure, "input ended before the game was over")
	}
}

// playLoop feeds input lines to the session until the game is over or the
// input ends. Bad lines and rejected moves are reported and skipped.
func playLoop(ctx context.Context, sess *engine.Session, in io.Reader, formatter *OutputFormatter) (game.Status, error) {
	scanner := bufio.NewScanner(in)
	status := game.InProgress

	prompt(formatter)
	for status == game.InProgress && scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			prompt(formatter)
			continue
		}

		mv, err := game.ParseMove(line)
		if err != nil {
			_ = formatter.GameError(err, map[string]string{"input": line})
			prompt(formatter)
			continue
		}

		reply, err := sess.Apply(ctx, mv)
		switch {
		case engine.IsRejected(err):
			_ = formatter.GameError(err, map[string]string{"input": line})
		case err != nil:
			return status, err
		default:
			if err := printBoard(formatter, reply, mv.String()); err != nil {
				return status, err
			}
		}

		status = reply.Status
		if status == game.InProgress {
			prompt(formatter)
		}
	}
	if err := scanner.Err(); err != nil {
		return status, fmt.Errorf("read moves: %w", err)
	}
	return status, nil
}

func prompt(formatter *OutputFormatter) {
	if formatter.Format != "json" {
		fmt.Fprint(formatter.Writer, "> ")
	}
}

// printBoard writes the board after a start or an accepted move.
func printBoard(formatter *OutputFormatter, r engine.Reply, move string) error {
	width := r.Config.Width()
	view := BoardView{
		GameID:   r.GameID,
		Seq:      r.Seq,
		Move:     move,
		Status:   r.Status.String(),
		Revealed: r.Revealed,
		Flags:    r.Flags,
		Rows:     harness.BoardRows(r.Tokens, width),
		Solution: harness.BoardRows(r.Solution, width),
	}
	if move != "" {
		view.Outcome = r.Result.Outcome.String()
	}

	if formatter.Format == "json" {
		return formatter.Success(view)
	}

	w := formatter.Writer
	if move != "" {
		fmt.Fprintf(w, "%s: %s\n", move, view.Outcome)
	}
	if r.Solution != nil {
		// Game over: show where the mines were.
		renderGrid(w, r.Solution, width)
	} else {
		renderGrid(w, r.Tokens, width)
	}
	fmt.Fprintf(w, "revealed %d/%d, flags %d/%d\n",
		r.Revealed, r.Config.SafeCells(), r.Flags, r.Config.Mines())
	return nil
}

// renderGrid prints row-major tokens with row and column indices. Hidden
// cells print as '.'.
func renderGrid(w io.Writer, tokens []string, width int) {
	if width == 0 {
		return
	}
	fmt.Fprint(w, "   ")
	for y := 0; y < width; y++ {
		fmt.Fprintf(w, "%3d", y)
	}
	fmt.Fprintln(w)
	for x := 0; x*width < len(tokens); x++ {
		fmt.Fprintf(w, "%3d", x)
		for _, tok := range tokens[x*width : (x+1)*width] {
			if tok == "" {
				tok = "."
			}
			fmt.Fprintf(w, "%3s", tok)
		}
		fmt.Fprintln(w)
	}
}
