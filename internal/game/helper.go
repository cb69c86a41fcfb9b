package game

import "fmt"

// Outcome is the terminal status of a board.
type Outcome string

const (
	Ongoing Outcome = "Ongoing"
	XWins   Outcome = "XWins"
	OWins   Outcome = "OWins"
	Draw    Outcome = "Draw"
)

// Winner returns the mark that won, or None for Ongoing and Draw.
func (o Outcome) Winner() PlayerMark {
	switch o {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	}
	return None
}

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool {
	return o != Ongoing
}

// Lines lists every row, column and diagonal of the board.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other side. None maps to None.
func Opponent(mark PlayerMark) PlayerMark {
	switch mark {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	}
	return None
}

// ScanWinner checks all eight lines and returns the mark holding one of them.
func ScanWinner(cells [Cells]PlayerMark) PlayerMark {
	for _, line := range Lines {
		a, b, c := cells[line[0]], cells[line[1]], cells[line[2]]
		if a != None && a == b && b == c {
			return a
		}
	}
	return None
}

// HoldsLine reports whether mark occupies a complete row, column or diagonal.
func HoldsLine(cells [Cells]PlayerMark, mark PlayerMark) bool {
	for _, line := range Lines {
		if cells[line[0]] == mark && cells[line[1]] == mark && cells[line[2]] == mark {
			return true
		}
	}
	return false
}

// NextTurn derives the side to move from the mark counts. X always moves
// first, so X has either as many marks as O or exactly one more.
func NextTurn(cells [Cells]PlayerMark) (PlayerMark, error) {
	var x, o int
	for _, c := range cells {
		switch c {
		case PlayerX:
			x++
		case PlayerO:
			o++
		}
	}
	switch x - o {
	case 0:
		return PlayerX, nil
	case 1:
		return PlayerO, nil
	}
	return None, fmt.Errorf("%w: X=%d O=%d", ErrInvalidTurnOrder, x, o)
}

// ParseMark converts "X", "O" or "" into a PlayerMark.
func ParseMark(s string) (PlayerMark, error) {
	switch m := PlayerMark(s); m {
	case None, PlayerX, PlayerO:
		return m, nil
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidMark, s)
}
