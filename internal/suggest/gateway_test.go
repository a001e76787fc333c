package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"STYLEMATE_BACK-END/internal/config"
)

func TestNewGatewayUnconfigured(t *testing.T) {
	gw := NewGateway(&config.OpenAIConfig{})

	// No API key: always errors, no network I/O attempted.
	text, err := gw.Generate(context.Background(), "party", "red dress")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, text)
}

func testOpenAIConfig(baseURL string) *config.OpenAIConfig {
	return &config.OpenAIConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "gpt-3.5-turbo",
		Temperature: 0.7,
		MaxTokens:   150,
		Timeout:     5 * time.Second,
	}
}

func TestGenerateTrimsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "  - Outfit: red dress\n  "},
				"finish_reason": "stop"
			}]
		}`))
	}))
	defer srv.Close()

	gw := NewGateway(testOpenAIConfig(srv.URL))

	text, err := gw.Generate(context.Background(), "party", "red dress")
	require.NoError(t, err)
	assert.Equal(t, "- Outfit: red dress", text)
}

func TestGenerateRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	gw := NewGateway(testOpenAIConfig(srv.URL))

	text, err := gw.Generate(context.Background(), "party", "red dress")
	assert.Error(t, err)
	assert.Empty(t, text)
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	gw := NewGateway(testOpenAIConfig(srv.URL))

	_, err := gw.Generate(context.Background(), "party", "red dress")
	assert.Error(t, err)
}

func TestGenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testOpenAIConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	gw := NewGateway(cfg)

	_, err := gw.Generate(context.Background(), "party", "red dress")
	assert.Error(t, err)
}
