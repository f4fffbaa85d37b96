package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	Server          ServerConfig
	GitHub          GitHubConfig
	Logging         logger.Config
	Database        DBConfig
	CommandsFile    string
	MaxWorkers      int
	SuccessReaction core.ReactionKind
}

// ServerConfig configures the HTTP endpoint.
type ServerConfig struct {
	Port          string
	WebhookSecret string
}

// GitHubConfig selects how the GitHub client authenticates. A GitHub App
// installation is used when AppID and InstallationID are set, otherwise the
// token, which may be empty for unauthenticated access.
type GitHubConfig struct {
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
	Timeout        time.Duration
}

// UsesApp reports whether the GitHub App credentials are configured.
func (c GitHubConfig) UsesApp() bool {
	return c.AppID != 0 && c.InstallationID != 0
}

// DBConfig configures the optional Postgres audit log.
type DBConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Enabled reports whether a database is configured.
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

// DSN renders the lib/pq connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.Username, c.Password, c.Database)
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets defaults, and validates the values it can check without network access.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")
	viper.SetDefault("GITHUB_TIMEOUT", "30s")
	viper.SetDefault("GITHUB_PRIVATE_KEY_PATH", "keys/slash-dispatch.private-key.pem")
	viper.SetDefault("COMMANDS_FILE", "commands.yml")
	viper.SetDefault("MAX_WORKERS", 5)
	viper.SetDefault("SUCCESS_REACTION", string(core.ReactionRocket))
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_NAME", "slash_dispatch")
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", "5m")

	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	reaction, err := core.ParseReactionKind(viper.GetString("SUCCESS_REACTION"))
	if err != nil {
		return nil, fmt.Errorf("SUCCESS_REACTION: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:          viper.GetString("SERVER_PORT"),
			WebhookSecret: viper.GetString("WEBHOOK_SECRET"),
		},
		GitHub: GitHubConfig{
			Token:          viper.GetString("GITHUB_TOKEN"),
			AppID:          viper.GetInt64("GITHUB_APP_ID"),
			InstallationID: viper.GetInt64("GITHUB_INSTALLATION_ID"),
			PrivateKeyPath: viper.GetString("GITHUB_PRIVATE_KEY_PATH"),
			Timeout:        viper.GetDuration("GITHUB_TIMEOUT"),
		},
		Logging: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
		Database: DBConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			Username:        viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Database:        viper.GetString("DB_NAME"),
			ConnMaxLifetime: viper.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: viper.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		},
		CommandsFile:    viper.GetString("COMMANDS_FILE"),
		MaxWorkers:      viper.GetInt("MAX_WORKERS"),
		SuccessReaction: reaction,
	}

	if cfg.GitHub.AppID != 0 && cfg.GitHub.InstallationID == 0 {
		return nil, fmt.Errorf("GITHUB_INSTALLATION_ID must be set when GITHUB_APP_ID is set")
	}
	return cfg, nil
}
