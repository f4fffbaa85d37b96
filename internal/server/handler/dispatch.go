// Package handler provides the HTTP handlers of the dispatch service.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"
	"github.com/google/uuid"

	"github.com/sevigo/slash-dispatch/internal/core"
)

// CommandLookup resolves a command name to its definition.
type CommandLookup interface {
	Lookup(name string) (core.Command, error)
}

// DispatchRequest is the body accepted by the dispatch endpoint. The chat
// command has already been parsed by the caller.
type DispatchRequest struct {
	Command           string             `json:"command"`
	Actor             string             `json:"actor"`
	Repository        string             `json:"repository"`
	CommentID         int64              `json:"comment_id"`
	PullRequestNumber int                `json:"pull_request_number"`
	ClientPayload     core.ClientPayload `json:"client_payload"`
}

// DispatchHandler queues signed dispatch requests.
type DispatchHandler struct {
	secret     []byte
	commands   CommandLookup
	dispatcher core.JobDispatcher
	logger     *slog.Logger
}

// NewDispatchHandler creates a handler that verifies request bodies against secret.
func NewDispatchHandler(secret string, commands CommandLookup, dispatcher core.JobDispatcher, logger *slog.Logger) *DispatchHandler {
	return &DispatchHandler{
		secret:     []byte(secret),
		commands:   commands,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle verifies, decodes and queues a dispatch request.
func (h *DispatchHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := github.ValidatePayload(r, h.secret)
	if err != nil {
		h.logger.Error("invalid dispatch request signature", "error", err)
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	var req DispatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Error("could not decode dispatch request", "error", err)
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}
	if req.Command == "" || req.Actor == "" || req.Repository == "" {
		http.Error(w, "command, actor and repository are required", http.StatusBadRequest)
		return
	}

	cmd, err := h.commands.Lookup(req.Command)
	if err != nil {
		if errors.Is(err, core.ErrUnknownCommand) {
			h.logger.Debug("ignoring unknown command", "command", req.Command, "repository", req.Repository)
			http.Error(w, "Unknown command", http.StatusNotFound)
			return
		}
		http.Error(w, "Command lookup failed", http.StatusInternalServerError)
		return
	}

	dispatchReq := &core.DispatchRequest{
		ID:                uuid.NewString(),
		Command:           cmd,
		Payload:           req.ClientPayload,
		Actor:             req.Actor,
		SourceRepository:  req.Repository,
		CommentID:         req.CommentID,
		PullRequestNumber: req.PullRequestNumber,
	}
	if err := h.dispatcher.Dispatch(r.Context(), dispatchReq); err != nil {
		h.logger.Error("failed to queue dispatch", "error", err, "request_id", dispatchReq.ID, "command", cmd.Command)
		http.Error(w, "Dispatch queue unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("X-Request-Id", dispatchReq.ID)
	w.WriteHeader(http.StatusAccepted)
	_, _ = fmt.Fprintf(w, "Command %s accepted as %s", cmd.Command, dispatchReq.ID)
}
