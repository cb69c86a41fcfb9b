package match

import (
	"context"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// maxRejections bounds how often one turn may propose an occupied cell.
const maxRejections = game.Cells

var ErrTooManyRejections = errors.New("strategy kept proposing occupied cells")

var (
	tracer = otel.Tracer("match")
	meter  = otel.Meter("match")

	matchesPlayed, _ = meter.Int64Counter("match.played",
		metric.WithDescription("Completed matches by winner"))
)

// Observer is notified as a match progresses. Observers run on the match's
// goroutine.
type Observer interface {
	Started(id string)
	MoveMade(mark game.PlayerMark, index int, b *game.Board)
	Finished(res Result)
}

// Result describes a finished match. Winner is None for a tie.
type Result struct {
	ID     string
	Winner game.PlayerMark
	Moves  []int
	Board  [game.Cells]game.PlayerMark
}

// Outcome maps the result onto a board outcome.
func (r Result) Outcome() game.Outcome {
	switch r.Winner {
	case game.PlayerX:
		return game.XWins
	case game.PlayerO:
		return game.OWins
	}
	return game.Draw
}

type options struct {
	observer    Observer
	delay       time.Duration
	parallelism int
	progress    func(done, total int)
}

type Option func(*options)

func WithObserver(o Observer) Option {
	return func(opts *options) { opts.observer = o }
}

// WithMoveDelay pauses between accepted moves.
func WithMoveDelay(d time.Duration) Option {
	return func(opts *options) { opts.delay = d }
}

// WithParallelism sets how many matches Series runs at once.
func WithParallelism(n int) Option {
	return func(opts *options) { opts.parallelism = n }
}

// WithProgress makes Series call fn after each finished match. Calls are
// serialized.
func WithProgress(fn func(done, total int)) Option {
	return func(opts *options) { opts.progress = fn }
}

func newOptions(opts []Option) options {
	o := options{parallelism: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism < 1 {
		o.parallelism = 1
	}
	return o
}

// Play runs one match on a fresh board. X moves first. The match stops as
// soon as a move wins or the board fills up.
func Play(ctx context.Context, x, o bot.Strategy, opts ...Option) (Result, error) {
	cfg := newOptions(opts)
	res := Result{ID: uuid.New().String(), Winner: game.None}

	ctx, span := tracer.Start(ctx, "match.Play", trace.WithAttributes(
		attribute.String("match.id", res.ID),
		attribute.String("player.x", bot.Name(x)),
		attribute.String("player.o", bot.Name(o)),
	))
	defer span.End()

	slog.InfoContext(ctx, "Match started", "match.id", res.ID, "player.x", bot.Name(x), "player.o", bot.Name(o))

	if cfg.observer != nil {
		cfg.observer.Started(res.ID)
	}

	b := game.NewBoard()
	mark := game.PlayerX
	for !b.IsFull() {
		player := x
		if mark == game.PlayerO {
			player = o
		}

		move, err := nextLegalMove(ctx, b, player, mark)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Match aborted")
			slog.ErrorContext(ctx, "Match aborted", "match.id", res.ID, "player.mark", mark, "error", err)
			return res, fmt.Errorf("match %s: %s: %w", res.ID, mark, err)
		}

		b.ApplyMove(move, mark)
		res.Moves = append(res.Moves, move)
		if cfg.observer != nil {
			cfg.observer.MoveMade(mark, move, b)
		}

		if b.Winner() != game.None {
			res.Winner = b.Winner()
			break
		}
		mark = game.Opponent(mark)

		if cfg.delay > 0 && !b.IsFull() {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-time.After(cfg.delay):
			}
		}
	}

	res.Board = b.Cells()
	winner := string(res.Winner)
	if winner == "" {
		winner = "tie"
	}
	span.SetAttributes(attribute.String("match.winner", winner), attribute.Int("match.moves", len(res.Moves)))
	matchesPlayed.Add(ctx, 1, metric.WithAttributes(attribute.String("match.winner", winner)))
	slog.InfoContext(ctx, "Match finished", "match.id", res.ID, "match.winner", winner, "match.moves", len(res.Moves))

	if cfg.observer != nil {
		cfg.observer.Finished(res)
	}
	return res, nil
}

// nextLegalMove asks player until it proposes an empty cell.
func nextLegalMove(ctx context.Context, b *game.Board, player bot.Strategy, mark game.PlayerMark) (int, error) {
	for range maxRejections {
		if err := ctx.Err(); err != nil {
			return game.NoPosition, err
		}
		move, err := player.NextMove(ctx, b, mark)
		if err != nil {
			return game.NoPosition, err
		}
		if move < 0 || move >= game.Cells {
			return game.NoPosition, fmt.Errorf("%w: %d", game.ErrInvalidIndex, move)
		}
		if b.Cell(move) == game.None {
			return move, nil
		}
		slog.WarnContext(ctx, "Move rejected, cell occupied", "player.id", bot.Name(player), "position", move)
	}
	return game.NoPosition, ErrTooManyRejections
}
