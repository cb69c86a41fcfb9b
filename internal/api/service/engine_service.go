package service

import (
	"context"
	"ctchen222/tictactoe/internal/api/response"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/match"
	"ctchen222/tictactoe/pkg/proto"
	"errors"
	"fmt"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("api.service")

// EngineService answers board questions for the HTTP oracle. Every call
// works on its own board, so calls may run concurrently.
type EngineService interface {
	BestMove(ctx context.Context, req *proto.MoveRequest) (*proto.MoveResponse, error)
	Outcome(ctx context.Context, req *proto.BoardRequest) (*proto.OutcomeResponse, error)
	Series(ctx context.Context, req *proto.SeriesRequest) (*proto.SeriesResponse, error)
}

type engineService struct {
	parallelism int
}

// NewEngineService creates a new EngineService.
func NewEngineService() EngineService {
	return &engineService{parallelism: runtime.NumCPU()}
}

// BestMove runs the search for req.Mark, which must be the side to move.
func (s *engineService) BestMove(ctx context.Context, req *proto.MoveRequest) (*proto.MoveResponse, error) {
	_, span := tracer.Start(ctx, "EngineService.BestMove")
	defer span.End()

	b, err := boardFromRequest(req.Board)
	if err != nil {
		return nil, err
	}
	if b.Outcome().Terminal() {
		return nil, response.Conflict(game.ErrGameFinished.Error())
	}

	mark := game.PlayerMark(req.Mark)
	if next, _ := game.NextTurn(b.Cells()); next != mark {
		return nil, response.BadRequest(fmt.Sprintf("it is %s's turn", next))
	}

	searcher := game.NewSearcher(mark)
	res := searcher.Choose(b, nil)
	span.SetAttributes(
		attribute.Int("search.position", res.Position),
		attribute.Int("search.score", res.Score),
		attribute.Int("search.nodes", searcher.Nodes()),
	)

	return &proto.MoveResponse{Position: res.Position, Score: res.Score, Nodes: searcher.Nodes()}, nil
}

// Outcome reports the status of a board and, while it is ongoing, whose turn it is.
func (s *engineService) Outcome(ctx context.Context, req *proto.BoardRequest) (*proto.OutcomeResponse, error) {
	_, span := tracer.Start(ctx, "EngineService.Outcome")
	defer span.End()

	b, err := boardFromRequest(req.Board)
	if err != nil {
		return nil, err
	}

	outcome := b.Outcome()
	resp := &proto.OutcomeResponse{
		Outcome:        outcome,
		Winner:         outcome.Winner(),
		AvailableMoves: b.AvailableMoves(),
	}
	if !outcome.Terminal() {
		resp.Next, _ = game.NextTurn(b.Cells())
	}
	return resp, nil
}

// Series plays bot matches server-side and returns the tally.
func (s *engineService) Series(ctx context.Context, req *proto.SeriesRequest) (*proto.SeriesResponse, error) {
	ctx, span := tracer.Start(ctx, "EngineService.Series")
	defer span.End()

	tally, err := match.Series(ctx, req.Repeats,
		match.DifficultyFactory(req.X),
		match.DifficultyFactory(req.O),
		match.WithParallelism(s.parallelism),
	)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to play series: %w", err)
	}
	return &proto.SeriesResponse{XWins: tally.XWins, OWins: tally.OWins, Ties: tally.Ties}, nil
}

func boardFromRequest(raw []string) (*game.Board, error) {
	if len(raw) != game.Cells {
		return nil, response.BadRequest(fmt.Sprintf("board must have %d cells, got %d", game.Cells, len(raw)))
	}

	var cells [game.Cells]game.PlayerMark
	for i, c := range raw {
		mark, err := game.ParseMark(c)
		if err != nil {
			return nil, response.BadRequest(err.Error())
		}
		cells[i] = mark
	}

	b, err := game.BoardFromCells(cells)
	if errors.Is(err, game.ErrInvalidTurnOrder) || errors.Is(err, game.ErrInvalidMark) || errors.Is(err, game.ErrImpossible) {
		return nil, response.BadRequest(err.Error())
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
