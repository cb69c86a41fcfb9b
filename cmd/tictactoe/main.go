package main

import (
	"context"
	"ctchen222/tictactoe/internal/api/controller"
	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/match"
	"ctchen222/tictactoe/internal/render"
	"ctchen222/tictactoe/internal/server"
	"ctchen222/tictactoe/internal/telemetry"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "Path to a YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config file] [play|serve]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to parse log level: %v", err)
	}
	// Keep stdout for the board when playing in the terminal.
	logger.Init(level, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Otel, io.Discard)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	switch cmd := flag.Arg(0); cmd {
	case "", "play":
		err = play(ctx, cfg)
	case "serve":
		err = serve(ctx, cfg)
	default:
		flag.Usage()
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Exiting with error", "error", err)
		stop()
		os.Exit(1)
	}
}

// play runs the configured series in the terminal and prints the score.
func play(ctx context.Context, cfg *config.Config) error {
	opts := []match.Option{
		match.WithParallelism(cfg.Parallelism),
		match.WithProgress(func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rPlaying matches %d/%d", done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}),
	}
	if cfg.PrintGame {
		// Narrated games are read by a person, one at a time.
		opts = []match.Option{
			match.WithObserver(render.NewConsoleObserver(os.Stdout)),
			match.WithMoveDelay(cfg.MoveDelay),
		}
	}

	newX, err := factory(cfg.Players.X)
	if err != nil {
		return err
	}
	newO, err := factory(cfg.Players.O)
	if err != nil {
		return err
	}
	if cfg.Players.X == bot.DifficultyHuman || cfg.Players.O == bot.DifficultyHuman {
		opts = append(opts, match.WithParallelism(1))
	}

	tally, err := match.Series(ctx, cfg.Repeats, newX, newO, opts...)
	if err != nil {
		return err
	}

	fmt.Println(tally)
	return nil
}

// factory builds bots per match. A human player is created once so every
// match reads from the same buffered stdin.
func factory(difficulty string) (match.Factory, error) {
	if difficulty != bot.DifficultyHuman {
		return match.DifficultyFactory(difficulty), nil
	}
	human, err := bot.New(difficulty)
	if err != nil {
		return nil, err
	}
	return func() (bot.Strategy, error) { return human, nil }, nil
}

// serve runs the HTTP move oracle until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config) error {
	engineService := service.NewEngineService()
	engineController := controller.NewEngineController(engineService)
	srv := server.NewServer(engineController)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: srv.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exiting")
	return nil
}
