package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		log       func(l *slog.Logger)
		checkFunc func(t *testing.T, output string)
	}{
		{
			name:   "text logger at info level",
			config: Config{Level: "info", Format: "text"},
			log: func(l *slog.Logger) {
				l.Info("command dispatched", "command", "deploy")
			},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "level=INFO")
				assert.Contains(t, output, `msg="command dispatched"`)
				assert.Contains(t, output, "command=deploy")
			},
		},
		{
			name:   "json logger at debug level",
			config: Config{Level: "debug", Format: "json"},
			log: func(l *slog.Logger) {
				l.Debug("state changed", "state", "routing")
			},
			checkFunc: func(t *testing.T, output string) {
				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(output), &entry))
				assert.Equal(t, "DEBUG", entry["level"])
				assert.Equal(t, "routing", entry["state"])
			},
		},
		{
			name:   "debug is filtered at warn level",
			config: Config{Level: "warn", Format: "text"},
			log: func(l *slog.Logger) {
				l.Debug("hidden")
				l.Warn("failed to set reaction", "comment_id", 42)
			},
			checkFunc: func(t *testing.T, output string) {
				assert.NotContains(t, output, "hidden")
				assert.Contains(t, output, "comment_id=42")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewLogger(tt.config, &buf))
			tt.checkFunc(t, buf.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
