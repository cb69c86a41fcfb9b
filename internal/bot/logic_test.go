package bot

import (
	"context"
	"ctchen222/tictactoe/internal/game"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	X = game.PlayerX
	O = game.PlayerO
	E = game.None
)

func boardOf(t *testing.T, cells [game.Cells]game.PlayerMark) *game.Board {
	t.Helper()
	b, err := game.BoardFromCells(cells)
	require.NoError(t, err)
	return b
}

func TestFindWinningMove(t *testing.T) {
	tests := []struct {
		name      string
		board     [game.Cells]game.PlayerMark
		mark      game.PlayerMark
		want      int
		wantFound bool
	}{
		{
			name: "No winning move - empty board",
			mark: X, want: game.NoPosition, wantFound: false,
		},
		{
			name:  "X can win - first row",
			board: [game.Cells]game.PlayerMark{X, X, E, O, O, E, E, E, E},
			mark:  X, want: 2, wantFound: true,
		},
		{
			name:  "O can win - second column",
			board: [game.Cells]game.PlayerMark{X, O, E, X, O, E, E, E, E},
			mark:  O, want: 7, wantFound: true,
		},
		{
			name:  "X can win - main diagonal",
			board: [game.Cells]game.PlayerMark{X, E, E, E, X, E, E, E, E},
			mark:  X, want: 8, wantFound: true,
		},
		{
			name:  "O can win - anti-diagonal",
			board: [game.Cells]game.PlayerMark{E, E, O, E, O, E, E, E, E},
			mark:  O, want: 6, wantFound: true,
		},
		{
			name:  "Full board, no win possible",
			board: [game.Cells]game.PlayerMark{X, O, X, O, X, O, O, X, O},
			mark:  X, want: game.NoPosition, wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := findWinningMove(tt.board, tt.mark)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRandomStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("Only one spot left", func(t *testing.T) {
		b := boardOf(t, [game.Cells]game.PlayerMark{X, O, X, X, O, O, O, E, X})
		got, err := NewRandomStrategy(nil).NextMove(ctx, b, X)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("Multiple spots left - always legal", func(t *testing.T) {
		s := NewRandomStrategy(rand.New(rand.NewPCG(7, 7)))
		b := boardOf(t, [game.Cells]game.PlayerMark{X, E, E, E, O, E, E, E, E})
		for range 50 {
			got, err := s.NextMove(ctx, b, X)
			require.NoError(t, err)
			assert.Contains(t, b.AvailableMoves(), got)
		}
	})

	t.Run("Full board", func(t *testing.T) {
		b := boardOf(t, [game.Cells]game.PlayerMark{X, O, X, X, O, O, O, X, X})
		_, err := NewRandomStrategy(nil).NextMove(ctx, b, O)
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Finished game", func(t *testing.T) {
		b := boardOf(t, [game.Cells]game.PlayerMark{X, X, X, O, O, E, E, E, E})
		_, err := NewRandomStrategy(nil).NextMove(ctx, b, O)
		assert.ErrorIs(t, err, game.ErrGameFinished)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewRandomStrategy(nil).NextMove(cctx, game.NewBoard(), X)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBlockingStrategy(t *testing.T) {
	ctx := context.Background()
	s := NewBlockingStrategy(rand.New(rand.NewPCG(1, 1)))

	t.Run("Takes the win over the block", func(t *testing.T) {
		b := boardOf(t, [game.Cells]game.PlayerMark{O, O, E, X, X, E, X, E, E})
		got, err := s.NextMove(ctx, b, O)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		b := boardOf(t, [game.Cells]game.PlayerMark{X, X, E, E, O, E, E, E, E})
		got, err := s.NextMove(ctx, b, O)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("Falls back to a legal random move", func(t *testing.T) {
		b := boardOf(t, [game.Cells]game.PlayerMark{E, E, E, E, X, E, E, E, E})
		got, err := s.NextMove(ctx, b, O)
		require.NoError(t, err)
		assert.Contains(t, b.AvailableMoves(), got)
	})

	t.Run("Keeps a bot name", func(t *testing.T) {
		assert.Regexp(t, `^bot-[0-9a-f]{8}$`, Name(s))
	})
}

func TestOptimalStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("Wins in one", func(t *testing.T) {
		b := boardOf(t, [game.Cells]game.PlayerMark{X, X, E, O, O, E, E, E, E})
		before := b.Cells()
		got, err := NewOptimalStrategy(nil).NextMove(ctx, b, X)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
		assert.Equal(t, before, b.Cells(), "search must leave the board untouched")
	})

	t.Run("Random opening on an empty board", func(t *testing.T) {
		s := NewOptimalStrategy(rand.New(rand.NewPCG(3, 4)))
		for range 20 {
			got, err := s.NextMove(ctx, game.NewBoard(), X)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, game.Cells)
		}
	})

	t.Run("Never loses to a random opponent", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(11, 13))
		for i := range 30 {
			engine := X
			if i%2 == 1 {
				engine = O
			}
			optimal := NewOptimalStrategy(rng)
			random := NewRandomStrategy(rng)

			b := game.NewBoard()
			turn := X
			for !b.Outcome().Terminal() {
				var s Strategy = random
				if turn == engine {
					s = optimal
				}
				move, err := s.NextMove(ctx, b, turn)
				require.NoError(t, err)
				require.True(t, b.ApplyMove(move, turn))
				turn = game.Opponent(turn)
			}
			assert.NotEqual(t, game.Opponent(engine), b.Winner(), "engine %s lost on %s", engine, b)
		}
	})

	t.Run("Finished game", func(t *testing.T) {
		b := boardOf(t, [game.Cells]game.PlayerMark{X, X, X, O, O, E, E, E, E})
		_, err := NewOptimalStrategy(nil).NextMove(ctx, b, O)
		assert.ErrorIs(t, err, game.ErrGameFinished)
	})
}
