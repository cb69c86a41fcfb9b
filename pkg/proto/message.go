package proto

import "ctchen222/tictactoe/internal/game"

// BoardRequest carries a board snapshot, cells in row-major order.
type BoardRequest struct {
	Board []string `json:"board" validate:"required,len=9,dive,cell"`
}

// MoveRequest asks for the best move of Mark on Board.
type MoveRequest struct {
	Board []string `json:"board" validate:"required,len=9,dive,cell"`
	Mark  string   `json:"mark" validate:"required,oneof=X O"`
}

// MoveResponse is the chosen move and its minimax value for the requester.
type MoveResponse struct {
	Position int `json:"position"`
	Score    int `json:"score"`
	Nodes    int `json:"nodes"`
}

// OutcomeResponse describes the state of a board.
type OutcomeResponse struct {
	Outcome        game.Outcome    `json:"outcome"`
	Winner         game.PlayerMark `json:"winner,omitempty"`
	Next           game.PlayerMark `json:"next,omitempty"`
	AvailableMoves []int           `json:"available_moves"`
}

// SeriesRequest asks the server to play bots against each other.
type SeriesRequest struct {
	X       string `json:"x" validate:"required,oneof=easy medium hard"`
	O       string `json:"o" validate:"required,oneof=easy medium hard"`
	Repeats int    `json:"repeats" validate:"min=1,max=1000"`
}

// SeriesResponse is the tally of a series.
type SeriesResponse struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Ties  int `json:"ties"`
}
