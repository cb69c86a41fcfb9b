package render

import (
	"bytes"
	"context"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/match"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	var buf bytes.Buffer
	Board(&buf, [game.Cells]game.PlayerMark{
		game.PlayerX, game.PlayerO, game.None,
		game.None, game.PlayerX, game.None,
		game.None, game.None, game.PlayerO,
	})
	assert.Equal(t, "| X | O |   |\n|   | X |   |\n|   |   | O |\n", buf.String())
}

func TestKeyMap(t *testing.T) {
	var buf bytes.Buffer
	KeyMap(&buf)
	assert.Equal(t, "| 0 | 1 | 2 |\n| 3 | 4 | 5 |\n| 6 | 7 | 8 |\n", buf.String())
}

func TestConsoleObserver(t *testing.T) {
	var buf bytes.Buffer
	o := NewConsoleObserver(&buf)
	assert.Empty(t, buf.String())

	o.Started("match-1")
	assert.Equal(t, "| 0 | 1 | 2 |\n| 3 | 4 | 5 |\n| 6 | 7 | 8 |\n", buf.String())

	buf.Reset()
	b := game.NewBoard()
	b.ApplyMove(4, game.PlayerX)
	o.MoveMade(game.PlayerX, 4, b)
	assert.Equal(t, "X makes a move to square 4\n|   |   |   |\n|   | X |   |\n|   |   |   |\n\n", buf.String())

	buf.Reset()
	o.Finished(match.Result{Winner: game.PlayerO})
	assert.Equal(t, "O wins!\n", buf.String())

	buf.Reset()
	o.Finished(match.Result{})
	assert.Equal(t, "It's a tie!\n", buf.String())
}

func TestConsoleObserverPrintsKeyMapEveryMatch(t *testing.T) {
	var buf bytes.Buffer
	_, err := match.Series(context.Background(), 3,
		match.DifficultyFactory(bot.DifficultyHard),
		match.DifficultyFactory(bot.DifficultyHard),
		match.WithObserver(NewConsoleObserver(&buf)),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(buf.String(), "| 0 | 1 | 2 |\n"))
	assert.Equal(t, 3, strings.Count(buf.String(), "It's a tie!\n"))
}
