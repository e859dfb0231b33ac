package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	store    *session.Store
	sessions *config.Session
	ws       *config.WebSocket
	basePath string
}

func New(logger *slog.Logger) (*App, error) {
	sessions, err := config.NewSession()
	if err != nil {
		return nil, fmt.Errorf("unable to read session config: %w", err)
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, fmt.Errorf("unable to read ws config: %w", err)
	}

	app := &App{
		logger:   logger,
		router:   http.NewServeMux(),
		store:    session.NewStore(logger, sessions.TTL, nil),
		sessions: sessions,
		ws:       ws,
		basePath: config.BasePath(),
	}
	app.loadRoutes()

	return app, nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Cors(),
		middleware.Logging(a.logger),
	)
}

// Start serves on addr until ctx is cancelled, evicting idle sessions in the
// background.
func (a *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:        addr,
		Handler:     a.Handler(),
		ReadTimeout: time.Second * 15,
		IdleTimeout: time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("game server listening",
			slog.String("addr", addr),
			slog.String("base path", a.basePath),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})
	g.Go(func() error {
		return a.store.Sweep(gCtx, a.sessions.SweepInterval)
	})

	return g.Wait()
}
