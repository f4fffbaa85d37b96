//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/slash-dispatch/internal/app"
	"github.com/sevigo/slash-dispatch/internal/config"
	"github.com/sevigo/slash-dispatch/internal/server"
)

var commonSet = wire.NewSet(
	config.LoadConfig,
	provideLogger,
	provideStore,
	provideGitHubClient,
	provideCommands,
	provideEngine,
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		commonSet,
		provideCommandLookup,
		provideDispatcher,
		server.NewServer,
		app.NewApp,
	)
	return &app.App{}, nil, nil
}

func InitializeTools(ctx context.Context) (*app.Tools, func(), error) {
	wire.Build(
		commonSet,
		app.NewTools,
	)
	return &app.Tools{}, nil, nil
}
