package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/advisorkit/advisor/internal/config"
	openai "github.com/sashabaranov/go-openai"
	"log/slog"
)

// ErrClientUnavailable indicates the completion client was never initialized
// because required credentials were missing at startup. Requests must fail
// fast with this error before any network call.
var ErrClientUnavailable = errors.New("completion client not initialized properly")

// CompletionClient sends a prompt to a chat-completion service and returns
// the raw response text.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAIClient is a thin adapter over the Azure OpenAI chat-completion API
// with a fixed deployment, sampling temperature and output length.
type OpenAIClient struct {
	client *openai.Client
	cfg    config.CompletionConfig
	logger *slog.Logger
}

// NewOpenAIClient validates the connection configuration and constructs the
// client. It returns an error when any of the API key, endpoint or deployment
// is missing; the caller records that error instead of terminating startup.
func NewOpenAIClient(cfg config.CompletionConfig, logger *slog.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" || cfg.Endpoint == "" || cfg.Deployment == "" {
		return nil, fmt.Errorf("azure openai environment variables are not set properly: %w", ErrClientUnavailable)
	}

	azureCfg := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	azureCfg.APIVersion = cfg.APIVersion

	logger.Info("initialized completion client",
		"deployment", cfg.Deployment,
		"api_version", cfg.APIVersion,
		"temperature", cfg.Temperature,
		"max_tokens", cfg.MaxTokens)

	return &OpenAIClient{
		client: openai.NewClientWithConfig(azureCfg),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Complete sends the system and user prompts to the configured deployment and
// returns the raw completion text. Upstream failures propagate to the caller;
// there are no retries.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	apiCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(apiCtx, openai.ChatCompletionRequest{
		Model:       c.cfg.Deployment,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
	})
	latency := time.Since(start)

	if err != nil {
		c.logger.Error("completion call failed",
			"deployment", c.cfg.Deployment,
			"duration_ms", latency.Milliseconds(),
			"error", err)
		return "", fmt.Errorf("completion call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned from deployment %s", c.cfg.Deployment)
	}

	c.logger.Info("completion call complete",
		"deployment", c.cfg.Deployment,
		"duration_ms", latency.Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return resp.Choices[0].Message.Content, nil
}
