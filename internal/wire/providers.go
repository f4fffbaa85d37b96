// Package wire contains the dependency injection graph of the service and the CLI.
package wire

import (
	"context"
	"log/slog"

	"github.com/sevigo/slash-dispatch/internal/config"
	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/db"
	"github.com/sevigo/slash-dispatch/internal/dispatch"
	"github.com/sevigo/slash-dispatch/internal/github"
	"github.com/sevigo/slash-dispatch/internal/jobs"
	"github.com/sevigo/slash-dispatch/internal/logger"
	"github.com/sevigo/slash-dispatch/internal/server/handler"
	"github.com/sevigo/slash-dispatch/internal/storage"
)

func provideLogger(cfg *config.Config) *slog.Logger {
	return logger.NewLogger(cfg.Logging, nil)
}

// provideStore connects the audit log when a database is configured.
func provideStore(cfg *config.Config, logger *slog.Logger) (storage.Store, func(), error) {
	if !cfg.Database.Enabled() {
		logger.Info("no database configured, dispatch runs are not recorded")
		return storage.NopStore{}, func() {}, nil
	}
	conn, cleanup, err := db.NewDatabase(&cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewStore(conn.DB), cleanup, nil
}

func provideGitHubClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (github.Client, error) {
	return github.NewClientFromConfig(ctx, cfg.GitHub, logger)
}

func provideCommands(cfg *config.Config) (*config.Commands, error) {
	return config.LoadCommands(cfg.CommandsFile)
}

func provideCommandLookup(commands *config.Commands) handler.CommandLookup {
	return commands
}

func provideEngine(client github.Client, store storage.Store, cfg *config.Config, logger *slog.Logger) *dispatch.Engine {
	return dispatch.NewEngine(client, core.MinimumPermission{}, store, cfg.SuccessReaction, logger)
}

func provideDispatcher(ctx context.Context, engine *dispatch.Engine, cfg *config.Config, logger *slog.Logger) core.JobDispatcher {
	return jobs.NewDispatcher(ctx, engine, cfg.MaxWorkers, logger)
}
