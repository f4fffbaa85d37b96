package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"

	"github.com/sevigo/slash-dispatch/internal/config"
)

// NewClientFromConfig builds the Client described by cfg: a GitHub App
// installation client when the App is configured, a token client otherwise.
func NewClientFromConfig(ctx context.Context, cfg config.GitHubConfig, logger *slog.Logger) (Client, error) {
	if cfg.UsesApp() {
		return NewInstallationClient(cfg, logger)
	}
	if cfg.Token == "" {
		logger.Warn("no GitHub credentials configured, using unauthenticated client")
	}
	return NewPATClient(ctx, cfg.Token, cfg.Timeout, logger), nil
}

// NewInstallationClient creates a client authenticated as a GitHub App
// installation. Installation tokens are refreshed by the transport before
// they expire.
func NewInstallationClient(cfg config.GitHubConfig, logger *slog.Logger) (Client, error) {
	logger.Info("creating GitHub installation client", "app_id", cfg.AppID, "installation_id", cfg.InstallationID)

	transport, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, cfg.AppID, cfg.InstallationID, cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create installation transport from %s: %w", cfg.PrivateKeyPath, err)
	}

	httpClient := &http.Client{Transport: transport, Timeout: cfg.Timeout}
	return NewGitHubClient(github.NewClient(httpClient), logger), nil
}
