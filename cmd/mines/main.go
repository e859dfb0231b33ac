package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/minesweeper-engine/internal/app"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var addr string

func init() {
	const usage = "listen address (overrides APP_PORT)"
	flag.StringVar(&addr, "addr", "", usage)
	flag.StringVar(&addr, "a", "", usage+" (shorthand)")
}

func main() {
	flag.Parse()

	logger := config.Logger()

	if err := config.EngineLogging(mines.Log); err != nil {
		logger.Error("failed to configure engine logging", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	a, err := app.New(logger)
	if err != nil {
		logger.Error("failed to configure server", slog.Any("error", err))
		os.Exit(1)
	}

	if addr == "" {
		addr = config.Port()
	}

	if err := a.Start(ctx, addr); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
