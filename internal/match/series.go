package match

import (
	"context"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Factory builds a fresh strategy for one match.
type Factory func() (bot.Strategy, error)

// Tally counts match results.
type Tally struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Ties  int `json:"ties"`
}

func (t *Tally) Add(res Result) {
	switch res.Winner {
	case game.PlayerX:
		t.XWins++
	case game.PlayerO:
		t.OWins++
	default:
		t.Ties++
	}
}

func (t Tally) Total() int {
	return t.XWins + t.OWins + t.Ties
}

func (t Tally) String() string {
	return fmt.Sprintf("Score: X: %d, O: %d, Tie: %d", t.XWins, t.OWins, t.Ties)
}

// Series plays n matches and tallies the results. Every match gets its own
// board and its own strategies, so matches may run in parallel. The first
// failing match cancels the rest.
func Series(ctx context.Context, n int, newX, newO Factory, opts ...Option) (Tally, error) {
	cfg := newOptions(opts)

	var (
		mu    sync.Mutex
		tally Tally
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)
	for i := range n {
		g.Go(func() error {
			x, err := newX()
			if err != nil {
				return fmt.Errorf("failed to create X player: %w", err)
			}
			o, err := newO()
			if err != nil {
				return fmt.Errorf("failed to create O player: %w", err)
			}

			res, err := Play(ctx, x, o, opts...)
			if err != nil {
				return err
			}

			mu.Lock()
			tally.Add(res)
			if cfg.progress != nil {
				cfg.progress(tally.Total(), n)
			}
			mu.Unlock()
			slog.DebugContext(ctx, "Series progress", "match.index", i, "match.id", res.ID)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return tally, err
	}
	return tally, nil
}

// DifficultyFactory returns a Factory for bot.New.
func DifficultyFactory(difficulty string, opts ...bot.Option) Factory {
	return func() (bot.Strategy, error) {
		return bot.New(difficulty, opts...)
	}
}
