package bot

import (
	"context"
	"ctchen222/tictactoe/internal/game"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
)

// Difficulties accepted by New.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyHuman  = "human"
)

var (
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

//go:generate mockgen -source=bot.go -destination=mocks/strategy_mock.go -package=mocks

// Strategy produces a move for mark on the given board. Implementations must
// not mutate the board.
type Strategy interface {
	NextMove(ctx context.Context, b *game.Board, mark game.PlayerMark) (int, error)
}

// Named is implemented by strategies that carry a player ID.
type Named interface {
	Name() string
}

// Name returns the player ID of s, or "anonymous" if it has none.
func Name(s Strategy) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return "anonymous"
}

type options struct {
	rng *rand.Rand
	in  io.Reader
	out io.Writer
}

// Option configures a Strategy built by New.
type Option func(*options)

// WithRand makes random choices reproducible. The generator must not be
// shared with strategies used from other goroutines.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithIO sets the prompt input and output of the human strategy.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(o *options) {
		o.in = in
		o.out = out
	}
}

// New creates the strategy for difficulty.
func New(difficulty string, opts ...Option) (Strategy, error) {
	o := options{in: os.Stdin, out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	switch difficulty {
	case DifficultyEasy:
		return NewRandomStrategy(o.rng), nil
	case DifficultyMedium:
		return NewBlockingStrategy(o.rng), nil
	case DifficultyHard:
		return NewOptimalStrategy(o.rng), nil
	case DifficultyHuman:
		return NewInteractiveStrategy(o.in, o.out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
}

func newBotID() string {
	return "bot-" + uuid.New().String()[:8]
}

// playable returns the empty cells of b, or an error when no move can be made.
func playable(b *game.Board) ([]int, error) {
	if b.Winner() != game.None {
		return nil, game.ErrGameFinished
	}
	moves := b.AvailableMoves()
	if len(moves) == 0 {
		return nil, ErrNoAvailableMoves
	}
	return moves, nil
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
