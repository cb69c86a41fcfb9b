package server

import (
	"ctchen222/tictactoe/internal/api/controller"
	"ctchen222/tictactoe/internal/api/response"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

type Server struct {
	engine *gin.Engine
}

func NewServer(engineController *controller.EngineController) *Server {
	r := gin.New()
	r.Use(gin.Recovery(), traceRequests())

	r.GET("/healthz", func(c *gin.Context) {
		response.SuccessResponse(c, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/move", engineController.BestMove)
	v1.POST("/outcome", engineController.Outcome)
	v1.POST("/series", engineController.Series)

	return &Server{engine: r}
}

// Engine exposes the gin engine as an http.Handler.
func (s *Server) Engine() http.Handler {
	return s.engine
}

// traceRequests opens a span per request and logs the result.
func traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), fmt.Sprintf("%s %s", c.Request.Method, c.FullPath()), trace.WithAttributes(
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.method", c.Request.Method),
		))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
		slog.InfoContext(ctx, "Request handled",
			"http.method", c.Request.Method, "http.path", c.Request.URL.Path,
			"http.status_code", status, "duration", time.Since(start))
	}
}
