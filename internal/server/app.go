// Package server initializes and runs the negotiation server: it wires
// storage, the negotiation service, event publishing and the HTTP API,
// and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/tajaa/matcha-recruit-sub001/internal/logging"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/config"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/events"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/httpapi"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/negotiations"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/repositories/repomanager"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	service *negotiations.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var repos repomanager.RepositoryManager
	if cfg.DatabaseDSN == "" {
		logger.Warn(ctx, "no database DSN configured, using in-memory storage")
		repos = repomanager.NewInMemoryRepositoryManager()
	} else {
		pg, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repos = pg
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RedisURL != "" {
		rdb, err := events.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		publisher = events.NewRedisPublisher(rdb)
	}

	svc := negotiations.NewService(repos, publisher, logger, cfg)

	return &App{config: cfg, logger: logger, repos: repos, service: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	api := httpapi.NewAPI(app.service, app.logger, []byte(app.config.SecretKey))

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: api.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "http shutdown error", "err", err)
		}
	}()

	app.logger.Info(ctx, "http server listening", "addr", app.config.EndpointAddrHTTP)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "storage close error", "err", err)
	}
}
