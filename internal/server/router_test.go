package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/slash-dispatch/internal/config"
	"github.com/sevigo/slash-dispatch/internal/core"
)

type noCommands struct{}

func (noCommands) Lookup(string) (core.Command, error) { return core.Command{}, core.ErrUnknownCommand }

type idleDispatcher struct{}

func (idleDispatcher) Dispatch(context.Context, *core.DispatchRequest) error { return nil }
func (idleDispatcher) Stop()                                                 {}

func TestRouter(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{WebhookSecret: "s3cret"}}
	router := NewRouter(cfg, noCommands{}, idleDispatcher{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("unsigned dispatch is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("dispatch only accepts POST", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dispatch", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
