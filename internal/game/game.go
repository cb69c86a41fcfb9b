package game

import (
	"errors"
	"fmt"
	"strings"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board geometry
	Size  = 3
	Cells = Size * Size
)

var (
	ErrInvalidIndex     = errors.New("invalid cell index")
	ErrInvalidMark      = errors.New("invalid player mark")
	ErrInvalidTurnOrder = errors.New("mark counts do not follow X-first alternation")
	ErrGameFinished     = errors.New("game already finished")
	ErrImpossible       = errors.New("position cannot arise from legal play")
)

// Board is the 3x3 grid, indexed 0-8 in row-major order, together with the
// winner latched by the most recent winning move.
type Board struct {
	cells  [Cells]PlayerMark
	winner PlayerMark
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// BoardFromCells builds a board from a snapshot. There is no last move to
// check incrementally, so a winner is found by scanning every line. Snapshots
// that legal alternating play cannot reach are rejected with ErrImpossible.
func BoardFromCells(cells [Cells]PlayerMark) (*Board, error) {
	for i, c := range cells {
		if c != None && c != PlayerX && c != PlayerO {
			return nil, fmt.Errorf("cell %d: %w: %q", i, ErrInvalidMark, c)
		}
	}
	next, err := NextTurn(cells)
	if err != nil {
		return nil, err
	}

	winner := None
	xLine, oLine := HoldsLine(cells, PlayerX), HoldsLine(cells, PlayerO)
	switch {
	case xLine && oLine:
		return nil, fmt.Errorf("%w: both X and O hold a line", ErrImpossible)
	case xLine:
		winner = PlayerX
	case oLine:
		winner = PlayerO
	}
	// The game stops at the first line, so the winner moved last.
	if winner != None && next != Opponent(winner) {
		return nil, fmt.Errorf("%w: %s moved after %s won", ErrImpossible, Opponent(winner), winner)
	}
	return &Board{cells: cells, winner: winner}, nil
}

// Cell returns the mark at index.
func (b *Board) Cell(index int) PlayerMark {
	mustBeIndex(index)
	return b.cells[index]
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Cells]PlayerMark {
	return b.cells
}

// AvailableMoves returns every empty index in ascending order.
func (b *Board) AvailableMoves() []int {
	moves := make([]int, 0, Cells)
	for i, c := range b.cells {
		if c == None {
			moves = append(moves, i)
		}
	}
	return moves
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == None {
			return false
		}
	}
	return true
}

func (b *Board) CountEmpty() int {
	n := 0
	for _, c := range b.cells {
		if c == None {
			n++
		}
	}
	return n
}

// ApplyMove places mark at index. It returns false and leaves the board
// untouched when the cell is occupied. A win through index is latched.
func (b *Board) ApplyMove(index int, mark PlayerMark) bool {
	mustBeIndex(index)
	if b.cells[index] != None {
		return false
	}
	b.cells[index] = mark
	if b.CheckWin(index, mark) {
		b.winner = mark
	}
	return true
}

// CheckWin reports whether mark holds the row, the column, or (for even
// indices) a diagonal passing through index.
func (b *Board) CheckWin(index int, mark PlayerMark) bool {
	mustBeIndex(index)

	row := index / Size
	if b.cells[row*Size] == mark && b.cells[row*Size+1] == mark && b.cells[row*Size+2] == mark {
		return true
	}

	col := index % Size
	if b.cells[col] == mark && b.cells[col+Size] == mark && b.cells[col+2*Size] == mark {
		return true
	}

	if index%2 == 0 {
		if b.cells[0] == mark && b.cells[4] == mark && b.cells[8] == mark {
			return true
		}
		if b.cells[2] == mark && b.cells[4] == mark && b.cells[6] == mark {
			return true
		}
	}
	return false
}

// undoMove empties index and clears the latched winner. Only the search
// engine may call it.
func (b *Board) undoMove(index int) {
	mustBeIndex(index)
	b.cells[index] = None
	b.winner = None
}

// Winner returns the latched winner, or None.
func (b *Board) Winner() PlayerMark {
	return b.winner
}

func (b *Board) Outcome() Outcome {
	switch {
	case b.winner == PlayerX:
		return XWins
	case b.winner == PlayerO:
		return OWins
	case b.IsFull():
		return Draw
	default:
		return Ongoing
	}
}

// String renders the grid as "X|O| /...", one row per slash-separated group.
func (b *Board) String() string {
	var sb strings.Builder
	for i, c := range b.cells {
		if i > 0 && i%Size == 0 {
			sb.WriteByte('/')
		} else if i > 0 {
			sb.WriteByte('|')
		}
		if c == None {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(string(c))
		}
	}
	return sb.String()
}

func mustBeIndex(index int) {
	if index < 0 || index >= Cells {
		panic(fmt.Errorf("%w: %d", ErrInvalidIndex, index))
	}
}
