package bot

import (
	"context"
	"ctchen222/tictactoe/internal/game"
	"log/slog"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// RandomStrategy makes a completely random move.
type RandomStrategy struct {
	name string
	rng  *rand.Rand
}

func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{name: newBotID(), rng: rng}
}

func (s *RandomStrategy) Name() string { return s.name }

func (s *RandomStrategy) NextMove(ctx context.Context, b *game.Board, _ game.PlayerMark) (int, error) {
	if err := ctx.Err(); err != nil {
		return game.NoPosition, err
	}
	moves, err := playable(b)
	if err != nil {
		return game.NoPosition, err
	}
	return moves[intN(s.rng, len(moves))], nil
}

// BlockingStrategy will win if it can, block if it must, otherwise move randomly.
type BlockingStrategy struct {
	RandomStrategy
}

func NewBlockingStrategy(rng *rand.Rand) *BlockingStrategy {
	return &BlockingStrategy{RandomStrategy{name: newBotID(), rng: rng}}
}

func (s *BlockingStrategy) NextMove(ctx context.Context, b *game.Board, mark game.PlayerMark) (int, error) {
	if err := ctx.Err(); err != nil {
		return game.NoPosition, err
	}
	if _, err := playable(b); err != nil {
		return game.NoPosition, err
	}

	cells := b.Cells()
	// 1. Win
	if index, ok := findWinningMove(cells, mark); ok {
		return index, nil
	}
	// 2. Block
	if index, ok := findWinningMove(cells, game.Opponent(mark)); ok {
		return index, nil
	}
	// 3. Random
	return s.RandomStrategy.NextMove(ctx, b, mark)
}

// findWinningMove returns the empty cell that completes a line holding two of
// mark, scanning lines in order.
func findWinningMove(cells [game.Cells]game.PlayerMark, mark game.PlayerMark) (int, bool) {
	for _, line := range game.Lines {
		held, gap := 0, game.NoPosition
		for _, i := range line {
			switch cells[i] {
			case mark:
				held++
			case game.None:
				gap = i
			}
		}
		if held == 2 && gap != game.NoPosition {
			return gap, true
		}
	}
	return game.NoPosition, false
}

// OptimalStrategy plays the minimax move and never loses.
type OptimalStrategy struct {
	name string
	rng  *rand.Rand
}

func NewOptimalStrategy(rng *rand.Rand) *OptimalStrategy {
	return &OptimalStrategy{name: newBotID(), rng: rng}
}

func (s *OptimalStrategy) Name() string { return s.name }

func (s *OptimalStrategy) NextMove(ctx context.Context, b *game.Board, mark game.PlayerMark) (int, error) {
	ctx, span := tracer.Start(ctx, "bot.OptimalStrategy.NextMove", trace.WithAttributes(
		attribute.String("player.id", s.name),
		attribute.String("player.mark", string(mark)),
		attribute.String("game.board", b.String()),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return game.NoPosition, err
	}
	if _, err := playable(b); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "No move to search")
		return game.NoPosition, err
	}

	searcher := game.NewSearcher(mark)
	start := time.Now()
	res := searcher.Choose(b, s.rng)
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.Int("search.position", res.Position),
		attribute.Int("search.score", res.Score),
		attribute.Int("search.nodes", searcher.Nodes()),
	)
	markAttr := metric.WithAttributes(attribute.String("player.mark", string(mark)))
	searchNodes.Record(ctx, int64(searcher.Nodes()), markAttr)
	searchDuration.Record(ctx, float64(elapsed.Microseconds())/1000, markAttr)

	slog.DebugContext(ctx, "Bot chose move",
		"player.id", s.name, "player.mark", mark,
		"position", res.Position, "score", res.Score, "nodes", searcher.Nodes())

	return res.Position, nil
}
