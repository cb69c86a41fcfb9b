package game

import (
	"math"
	"math/rand/v2"
)

// NoPosition marks a Result that carries no move, i.e. a terminal board.
const NoPosition = -1

// Result is the value of a position and the move that achieves it.
type Result struct {
	Position int
	Score    int
}

// Searcher runs exhaustive minimax on behalf of one side. A Searcher mutates
// the board it is given and restores it before returning, so a board must
// not be searched by two goroutines at once.
type Searcher struct {
	engine PlayerMark
	nodes  int
}

// NewSearcher returns a Searcher that maximizes for engine.
func NewSearcher(engine PlayerMark) *Searcher {
	return &Searcher{engine: engine}
}

// Nodes returns how many positions the last Search visited.
func (s *Searcher) Nodes() int {
	return s.nodes
}

// Search returns the optimal move for sideToMove and its value from the
// engine's point of view. Wins score empty+1 so that faster wins and slower
// losses are preferred. Ties keep the lowest index.
func (s *Searcher) Search(b *Board, sideToMove PlayerMark) Result {
	s.nodes = 0
	return s.minimax(b, sideToMove)
}

func (s *Searcher) minimax(b *Board, player PlayerMark) Result {
	s.nodes++
	other := Opponent(player)

	if b.winner == other {
		score := b.CountEmpty() + 1
		if other != s.engine {
			score = -score
		}
		return Result{Position: NoPosition, Score: score}
	}
	if b.IsFull() {
		return Result{Position: NoPosition, Score: 0}
	}

	maximizing := player == s.engine
	best := Result{Position: NoPosition, Score: math.MaxInt}
	if maximizing {
		best.Score = math.MinInt
	}

	for _, move := range b.AvailableMoves() {
		b.ApplyMove(move, player)
		sim := s.minimax(b, other)
		b.undoMove(move)
		sim.Position = move

		if maximizing && sim.Score > best.Score || !maximizing && sim.Score < best.Score {
			best = sim
		}
	}
	return best
}

// BestMove is a one-shot Search for engineSide.
func BestMove(b *Board, sideToMove, engineSide PlayerMark) Result {
	return NewSearcher(engineSide).Search(b, sideToMove)
}

// Choose picks the engine's move for a real turn. The opening move on an
// empty board is uniformly random and skips the search; the returned score
// is then 0 and Nodes reports 0.
func (s *Searcher) Choose(b *Board, rng *rand.Rand) Result {
	if b.CountEmpty() == Cells {
		s.nodes = 0
		return Result{Position: randIntN(rng, Cells)}
	}
	return s.Search(b, s.engine)
}

// ChooseMove returns only the position picked by Choose.
func ChooseMove(b *Board, engineSide PlayerMark, rng *rand.Rand) int {
	return NewSearcher(engineSide).Choose(b, rng).Position
}

func randIntN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
