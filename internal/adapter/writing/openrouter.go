package writing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"finpulse/internal/domain/fallback"
	"finpulse/internal/domain/ports"
)

const (
	DefaultOpenRouterURL = "https://openrouter.ai/api/v1/"
	DefaultReferer       = "https://github.com/kaledh4/calc"
	DefaultTitle         = "Smart Finance Calculator"

	temperature = 0.7
	maxTokens   = 2000
)

// OpenRouterConfig holds the connection settings for the OpenRouter chat endpoint.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Referer string
	Title   string
	Timeout time.Duration
}

// OpenRouterWriter sends single-turn prompts to OpenRouter's OpenAI-compatible API.
type OpenRouterWriter struct {
	client *openai.Client
	apiKey string
	logger ports.Logger
}

var _ ports.Completer = (*OpenRouterWriter)(nil)

// NewOpenRouterWriter constructs an OpenRouterWriter. SDK retries are disabled so a
// failed model moves straight on to the next one.
func NewOpenRouterWriter(cfg OpenRouterConfig, logger ports.Logger) *OpenRouterWriter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenRouterURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.Referer == "" {
		cfg.Referer = DefaultReferer
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHeader("HTTP-Referer", cfg.Referer),
		option.WithHeader("X-Title", cfg.Title),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		option.WithMaxRetries(0),
	)

	return &OpenRouterWriter{
		client: &client,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// Complete asks modelName for a reply to prompt and returns the first choice's text.
func (w *OpenRouterWriter) Complete(ctx context.Context, modelName, prompt string) (string, error) {
	if w.apiKey == "" {
		return "", fallback.Skipped(modelName, "openrouter api key not configured")
	}

	if w.logger != nil {
		w.logger.Info(ctx, "calling openrouter", "model", modelName, "promptSize", len(prompt))
	}

	resp, err := w.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fallback.Upstream(modelName, fmt.Errorf("openrouter status %d: %w", apiErr.StatusCode, err))
		}
		return "", fallback.Classify(modelName, fmt.Errorf("call openrouter: %w", err))
	}

	if len(resp.Choices) == 0 {
		return "", fallback.Empty(modelName)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fallback.Empty(modelName)
	}

	if w.logger != nil {
		w.logger.Info(ctx, "openrouter response received", "model", modelName, "chars", len([]rune(text)))
	}
	return text, nil
}
