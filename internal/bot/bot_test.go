package bot

import (
	"bytes"
	"context"
	"ctchen222/tictactoe/internal/game"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		difficulty string
		want       any
	}{
		{DifficultyEasy, &RandomStrategy{}},
		{DifficultyMedium, &BlockingStrategy{}},
		{DifficultyHard, &OptimalStrategy{}},
		{DifficultyHuman, &InteractiveStrategy{}},
	}
	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			s, err := New(tt.difficulty)
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
			assert.NotEmpty(t, Name(s))
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := New("impossible")
		assert.ErrorIs(t, err, ErrUnknownDifficulty)
	})
}

func TestNewBotNamesAreUnique(t *testing.T) {
	a, err := New(DifficultyHard)
	require.NoError(t, err)
	b, err := New(DifficultyHard)
	require.NoError(t, err)
	assert.NotEqual(t, Name(a), Name(b))
}

type unnamed struct{}

func (unnamed) NextMove(context.Context, *game.Board, game.PlayerMark) (int, error) {
	return 0, nil
}

func TestNameWithoutID(t *testing.T) {
	assert.Equal(t, "anonymous", Name(unnamed{}))
}

func TestInteractiveStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("Re-prompts until a free square is entered", func(t *testing.T) {
		b := boardOf(t, [game.Cells]game.PlayerMark{X, E, E, E, E, E, E, E, E})
		var out bytes.Buffer
		s := NewInteractiveStrategy(strings.NewReader("abc\n0\n12\n 5 \n"), &out)

		got, err := s.NextMove(ctx, b, O)
		require.NoError(t, err)
		assert.Equal(t, 5, got)
		assert.Equal(t, 4, strings.Count(out.String(), "O turn. Make move(0-8): "))
		assert.Equal(t, 3, strings.Count(out.String(), "Invalid square. Try again."))
	})

	t.Run("Keeps reading the same input across turns", func(t *testing.T) {
		b := game.NewBoard()
		s := NewInteractiveStrategy(strings.NewReader("4\n0\n"), io.Discard)

		first, err := s.NextMove(ctx, b, X)
		require.NoError(t, err)
		assert.Equal(t, 4, first)
		b.ApplyMove(first, X)

		second, err := s.NextMove(ctx, b, X)
		require.NoError(t, err)
		assert.Equal(t, 0, second)
	})

	t.Run("End of input", func(t *testing.T) {
		s := NewInteractiveStrategy(strings.NewReader("9\n"), io.Discard)
		_, err := s.NextMove(ctx, game.NewBoard(), X)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Cancelled while waiting for input", func(t *testing.T) {
		r, w := io.Pipe()
		defer w.Close()
		s := NewInteractiveStrategy(r, io.Discard)

		cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		done := make(chan error, 1)
		go func() {
			_, err := s.NextMove(cctx, game.NewBoard(), X)
			done <- err
		}()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.DeadlineExceeded)
		case <-time.After(time.Second):
			t.Fatal("NextMove did not return after the context expired")
		}

		// A line typed after the cancellation goes to the next prompt.
		go fmt.Fprintln(w, "3")
		got, err := s.NextMove(ctx, game.NewBoard(), X)
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("Built through New with custom IO", func(t *testing.T) {
		var out bytes.Buffer
		s, err := New(DifficultyHuman, WithIO(strings.NewReader("8\n"), &out))
		require.NoError(t, err)
		got, err := s.NextMove(ctx, game.NewBoard(), X)
		require.NoError(t, err)
		assert.Equal(t, 8, got)
		assert.Contains(t, out.String(), "X turn.")
		assert.Regexp(t, `^human-`, Name(s))
	})
}
