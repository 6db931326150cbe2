package claude

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procura/internal/config"
	"procura/internal/parser"
	"procura/internal/port"
)

func newTestClient(serverURL string) *Client {
	cfg := &config.ProviderConfig{
		Provider:     "claude",
		APIKey:       "test-claude-key",
		DefaultModel: "claude-sonnet-4-20250514",
		TimeoutSecs:  30,
	}
	return NewClientWithEndpoint(cfg, serverURL)
}

func TestClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-claude-key", r.Header.Get("x-api-key"))
		assert.Equal(t, apiVersion, r.Header.Get("anthropic-version"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, float64(0), reqBody["temperature"])
		assert.Equal(t, "system text", reqBody["system"])

		messages := reqBody["messages"].([]interface{})
		assert.Len(t, messages, 1)
		user := messages[0].(map[string]interface{})
		assert.Equal(t, "user", user["role"])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{\"items\":[]}"}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	text, err := c.Complete(context.Background(), port.Prompt{
		System: "system text",
		User:   "user text",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, text)
}

func TestClient_Complete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "45")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.Complete(context.Background(), port.Prompt{User: "x"})

	require.Error(t, err)
	var rlErr *parser.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "claude", rlErr.Provider)
}

func TestClient_Complete_APIErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"bad model"}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.Complete(context.Background(), port.Prompt{User: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_request_error")
}

func TestClient_Complete_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.Complete(context.Background(), port.Prompt{User: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content blocks")
}
