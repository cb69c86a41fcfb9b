package controller

import (
	"ctchen222/tictactoe/internal/api/response"
	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/validator"
	"ctchen222/tictactoe/pkg/proto"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EngineController handles engine-related HTTP requests.
type EngineController struct {
	engineService service.EngineService
}

// NewEngineController creates a new EngineController.
func NewEngineController(engineService service.EngineService) *EngineController {
	return &EngineController{
		engineService: engineService,
	}
}

// BestMove handles the best-move endpoint.
func (ec *EngineController) BestMove(c *gin.Context) {
	var req proto.MoveRequest
	if !bind(c, &req) {
		return
	}

	resp, err := ec.engineService.BestMove(c.Request.Context(), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	response.SuccessResponse(c, resp)
}

// Outcome handles the board outcome endpoint.
func (ec *EngineController) Outcome(c *gin.Context) {
	var req proto.BoardRequest
	if !bind(c, &req) {
		return
	}

	resp, err := ec.engineService.Outcome(c.Request.Context(), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	response.SuccessResponse(c, resp)
}

// Series handles the bot series endpoint.
func (ec *EngineController) Series(c *gin.Context) {
	var req proto.SeriesRequest
	if !bind(c, &req) {
		return
	}

	resp, err := ec.engineService.Series(c.Request.Context(), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	response.SuccessResponse(c, resp)
}

// bind decodes and validates the JSON body, writing a 400 on failure.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return false
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
