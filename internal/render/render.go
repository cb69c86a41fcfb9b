// Package render prints boards and match progress to a console.
package render

import (
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/match"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Board prints the grid one row per line, e.g. "| X | O |   |".
func Board(w io.Writer, cells [game.Cells]game.PlayerMark) {
	labels := make([]string, game.Cells)
	for i, c := range cells {
		labels[i] = string(c)
		if c == game.None {
			labels[i] = " "
		}
	}
	rows(w, labels)
}

// KeyMap prints the cell indices in board layout.
func KeyMap(w io.Writer) {
	labels := make([]string, game.Cells)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	rows(w, labels)
}

func rows(w io.Writer, labels []string) {
	for r := range game.Size {
		row := labels[r*game.Size : (r+1)*game.Size]
		fmt.Fprintln(w, "| "+strings.Join(row, " | ")+" |")
	}
}

// ConsoleObserver narrates a match as it is played.
type ConsoleObserver struct {
	W io.Writer
}

func NewConsoleObserver(w io.Writer) *ConsoleObserver {
	return &ConsoleObserver{W: w}
}

// Started prints the key map so the player knows which index is which square.
func (o *ConsoleObserver) Started(string) {
	KeyMap(o.W)
}

func (o *ConsoleObserver) MoveMade(mark game.PlayerMark, index int, b *game.Board) {
	fmt.Fprintf(o.W, "%s makes a move to square %d\n", mark, index)
	Board(o.W, b.Cells())
	fmt.Fprintln(o.W)
}

func (o *ConsoleObserver) Finished(res match.Result) {
	if res.Winner != game.None {
		fmt.Fprintf(o.W, "%s wins!\n", res.Winner)
		return
	}
	fmt.Fprintln(o.W, "It's a tie!")
}
