package github

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, mux *http.ServeMux) Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	gh := github.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = baseURL

	return NewGitHubClient(gh, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func decodeBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestClient_CreateRepositoryDispatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/infra/dispatches", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "deploy-command", body["event_type"])
		assert.Equal(t, map[string]interface{}{"github": map[string]interface{}{"actor": "octocat"}}, body["client_payload"])
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, mux)
	err := client.CreateRepositoryDispatch(context.Background(), "acme", "infra", "deploy-command", json.RawMessage(`{"github":{"actor":"octocat"}}`))
	assert.NoError(t, err)
}

func TestClient_CreateWorkflowDispatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/widgets/actions/workflows/build-ci.yml/dispatches", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "feature-x", body["ref"])
		assert.Equal(t, map[string]interface{}{"env": "staging"}, body["inputs"])
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, mux)
	err := client.CreateWorkflowDispatch(context.Background(), "acme", "widgets", "build-ci.yml", "feature-x", map[string]interface{}{"env": "staging"})
	assert.NoError(t, err)
}

func TestClient_ReadCalls(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/app/collaborators/octocat/permission", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"permission":"write","user":{"login":"octocat"}}`)
	})
	mux.HandleFunc("GET /repos/acme/widgets", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"full_name":"acme/widgets","default_branch":"trunk"}`)
	})
	mux.HandleFunc("GET /repos/acme/app/pulls/7", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"number":7,"title":"Add widget"}`)
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	permission, err := client.GetCollaboratorPermission(ctx, "acme", "app", "octocat")
	require.NoError(t, err)
	assert.Equal(t, "write", permission)

	repo, err := client.GetRepository(ctx, "acme", "widgets")
	require.NoError(t, err)
	assert.Equal(t, "trunk", repo.GetDefaultBranch())

	pr, err := client.GetPullRequest(ctx, "acme", "app", 7)
	require.NoError(t, err)
	assert.Equal(t, "Add widget", pr.GetTitle())
}

func TestClient_CreateIssueCommentReaction(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/app/issues/comments/5/reactions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "rocket", decodeBody(t, r)["content"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":1,"content":"rocket"}`)
	})

	client := newTestClient(t, mux)
	assert.NoError(t, client.CreateIssueCommentReaction(context.Background(), "acme", "app", 5, "rocket"))
}

func TestClient_APIErrorIsReturned(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/app/pulls/404", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Not Found"}`)
	})

	client := newTestClient(t, mux)
	_, err := client.GetPullRequest(context.Background(), "acme", "app", 404)

	var apiErr *github.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Response.StatusCode)
}

func TestClient_CancelledContextIssuesNoRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newTestClient(t, mux)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetCollaboratorPermission(ctx, "acme", "app", "octocat")
	assert.ErrorIs(t, err, context.Canceled)

	err = client.CreateWorkflowDispatch(ctx, "acme", "widgets", "build-ci.yml", "main", nil)
	assert.ErrorIs(t, err, context.Canceled)

	err = client.CreateRepositoryDispatch(ctx, "acme", "infra", "deploy", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, context.Canceled)

	err = client.CreateIssueCommentReaction(ctx, "acme", "app", 5, "eyes")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_IssuedCallSurvivesCancellation(t *testing.T) {
	started := make(chan struct{})
	var completed atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/widgets/actions/workflows/build-ci.yml/dispatches", func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		time.Sleep(200 * time.Millisecond)
		completed.Store(true)
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, mux)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := client.CreateWorkflowDispatch(ctx, "acme", "widgets", "build-ci.yml", "main", nil)
	require.NoError(t, err)
	assert.True(t, completed.Load())
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestNewPATClient_EmptyTokenIsUnauthenticated(t *testing.T) {
	client := NewPATClient(context.Background(), "", 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NotNil(t, client)
}
