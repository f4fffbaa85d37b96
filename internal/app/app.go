// Package app assembles the dispatch service and the tooling shared with the CLI.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sevigo/slash-dispatch/internal/config"
	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/dispatch"
	"github.com/sevigo/slash-dispatch/internal/github"
	"github.com/sevigo/slash-dispatch/internal/server"
	"github.com/sevigo/slash-dispatch/internal/storage"
)

const shutdownTimeout = 30 * time.Second

// ErrMissingWebhookSecret is returned when the server would accept unsigned requests.
var ErrMissingWebhookSecret = errors.New("WEBHOOK_SECRET must be set to run the server")

// App holds the long-running components of the service.
type App struct {
	cfg        *config.Config
	server     *server.Server
	dispatcher core.JobDispatcher
	logger     *slog.Logger
}

// NewApp creates the application around an already wired server and worker pool.
func NewApp(cfg *config.Config, srv *server.Server, dispatcher core.JobDispatcher, logger *slog.Logger) (*App, error) {
	if cfg.Server.WebhookSecret == "" {
		return nil, ErrMissingWebhookSecret
	}
	return &App{
		cfg:        cfg,
		server:     srv,
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting slash-dispatch",
		"server_port", a.cfg.Server.Port,
		"max_workers", a.cfg.MaxWorkers,
		"commands_file", a.cfg.CommandsFile)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the server first so no new requests are queued, then
// drains the worker pool.
func (a *App) Stop() error {
	a.logger.Info("shutting down slash-dispatch")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	serverErr := a.server.Stop(ctx)
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
	}

	a.dispatcher.Stop()

	if serverErr != nil {
		return serverErr
	}
	a.logger.Info("slash-dispatch stopped")
	return nil
}

// Tools bundles what the CLI needs to run commands synchronously.
type Tools struct {
	Config   *config.Config
	Client   github.Client
	Commands *config.Commands
	Engine   *dispatch.Engine
	Store    storage.Store
	Logger   *slog.Logger
}

// NewTools creates the CLI toolkit.
func NewTools(cfg *config.Config, client github.Client, commands *config.Commands, engine *dispatch.Engine, store storage.Store, logger *slog.Logger) *Tools {
	return &Tools{
		Config:   cfg,
		Client:   client,
		Commands: commands,
		Engine:   engine,
		Store:    store,
		Logger:   logger,
	}
}
