// Package server exposes the dispatch service over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/slash-dispatch/internal/config"
	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/server/handler"
)

// Server is the HTTP front of the worker pool.
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

// NewServer builds the server. Request contexts derive from ctx, so
// cancelling it aborts requests still being handled.
func NewServer(ctx context.Context, cfg *config.Config, commands handler.CommandLookup, dispatcher core.JobDispatcher, logger *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              net.JoinHostPort("", cfg.Server.Port),
			Handler:           NewRouter(cfg, commands, dispatcher, logger),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return ctx },
		},
		logger: logger,
	}
}

// Start serves until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("listening", "address", s.http.Addr)

	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("http server: %w", err)
}

// Stop stops accepting connections and waits for active requests until ctx ends.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.http.Shutdown(ctx)
}
