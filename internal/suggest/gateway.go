package suggest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"STYLEMATE_BACK-END/internal/config"
)

// ErrNotConfigured is returned by the unconfigured gateway without any
// network I/O.
var ErrNotConfigured = errors.New("suggestion gateway not configured")

// Gateway is the optional remote suggestion delegate. Any error means
// the caller must fall back to the rule engine; errors are never
// surfaced to the end user as failures.
type Gateway interface {
	Generate(ctx context.Context, event, clothesText string) (string, error)
}

// NewGateway selects the gateway variant once at startup: an OpenAI
// client when an API key is configured, a no-op otherwise.
func NewGateway(cfg *config.OpenAIConfig) Gateway {
	if cfg.APIKey == "" {
		return unconfiguredGateway{}
	}
	return newOpenAIGateway(cfg)
}

type unconfiguredGateway struct{}

func (unconfiguredGateway) Generate(ctx context.Context, event, clothesText string) (string, error) {
	return "", ErrNotConfigured
}

// openAIGateway calls the chat completions API. Single attempt per
// request, bounded by the client timeout.
type openAIGateway struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func newOpenAIGateway(cfg *config.OpenAIConfig) *openAIGateway {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	// Credential-bearing requests must never go through an ambient
	// proxy, so the transport pins Proxy to nil instead of inheriting
	// http.ProxyFromEnvironment.
	clientConfig.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &http.Transport{Proxy: nil},
	}

	return &openAIGateway{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

func (g *openAIGateway) Generate(ctx context.Context, event, clothesText string) (string, error) {
	prompt := fmt.Sprintf(`Suggest a stylish outfit for %s using clothes: %s.
Format as:
- Outfit: [suggestion]
- Color Tip: [tip]
- Accessories: [accessories]
- Tip: [styling tip]`, event, clothesText)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
