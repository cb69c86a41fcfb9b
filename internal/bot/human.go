package bot

import (
	"bufio"
	"context"
	"ctchen222/tictactoe/internal/game"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// InteractiveStrategy asks a human for each move, re-prompting until the
// answer is an empty cell. Input is read by a single goroutine started on the
// first prompt, so a cancelled context unblocks NextMove without losing the
// line that is typed afterwards.
type InteractiveStrategy struct {
	name string
	in   io.Reader
	out  io.Writer

	start   sync.Once
	lines   chan string
	readErr error // set before lines is closed
}

func NewInteractiveStrategy(in io.Reader, out io.Writer) *InteractiveStrategy {
	return &InteractiveStrategy{
		name:  "human-" + uuid.New().String()[:8],
		in:    in,
		out:   out,
		lines: make(chan string),
	}
}

func (s *InteractiveStrategy) Name() string { return s.name }

func (s *InteractiveStrategy) NextMove(ctx context.Context, b *game.Board, mark game.PlayerMark) (int, error) {
	moves, err := playable(b)
	if err != nil {
		return game.NoPosition, err
	}
	s.start.Do(func() { go s.readLines() })

	for {
		if err := ctx.Err(); err != nil {
			return game.NoPosition, err
		}
		fmt.Fprintf(s.out, "%s turn. Make move(0-8): ", mark)

		var line string
		select {
		case <-ctx.Done():
			return game.NoPosition, ctx.Err()
		case l, ok := <-s.lines:
			if !ok {
				err := s.readErr
				if err == nil {
					err = io.EOF
				}
				return game.NoPosition, fmt.Errorf("failed to read move: %w", err)
			}
			line = l
		}

		square, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && slices.Contains(moves, square) {
			return square, nil
		}
		fmt.Fprintln(s.out, "Invalid square. Try again.")
	}
}

func (s *InteractiveStrategy) readLines() {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		s.lines <- scanner.Text()
	}
	s.readErr = scanner.Err()
	close(s.lines)
}
