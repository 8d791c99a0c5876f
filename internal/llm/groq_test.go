package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeProvider(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *GroqClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewGroqClient(srv.URL, "test-model", "test-key")
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotBody chatRequest
	_, c := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "a gentle overview"}},
			},
		})
	})

	text, err := c.Complete(context.Background(), "write an overview")
	require.NoError(t, err)
	assert.Equal(t, "a gentle overview", text)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "write an overview", gotBody.Messages[0].Content)
	assert.Equal(t, "test-model", gotBody.Model)
}

func TestCompleteNonOKStatusIsUnavailable(t *testing.T) {
	_, c := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := c.Complete(context.Background(), "x")
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
}

func TestCompleteTransportErrorIsUnavailable(t *testing.T) {
	srv, c := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := c.Complete(context.Background(), "x")
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
}

func TestCompleteEmptyChoices(t *testing.T) {
	_, c := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := c.Complete(context.Background(), "x")
	assert.True(t, errors.Is(err, ErrEmptyResponse), "got %v", err)
}

func TestHealthPing(t *testing.T) {
	_, c := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, c.HealthPing(context.Background()))
}
