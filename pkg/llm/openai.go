package llm

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/postwise/seoscope/pkg/domain"
)

// OpenAIProvider talks to any OpenAI-compatible chat completion endpoint
type OpenAIProvider struct {
	name    string
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIProvider creates a gateway for an OpenAI-compatible provider.
// cfg.Endpoint overrides the base URL for compatible backends.
func NewOpenAIProvider(cfg domain.ProviderConfig, timeout time.Duration) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &OpenAIProvider{
		name:    cfg.Name,
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
		timeout: timeout,
	}
}

// Name returns the configured provider name
func (p *OpenAIProvider) Name() string { return p.name }

// Complete sends the prompt and returns the completion text
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", p.classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewError(domain.ErrParseEmpty, p.name, "no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Close is a no-op, the underlying client holds no connections to release
func (p *OpenAIProvider) Close() error { return nil }

// classify normalizes client errors into the domain error taxonomy
func (p *OpenAIProvider) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewError(domain.ErrProviderTimeout, p.name, "request timed out after %s", p.timeout)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return domain.NewError(kindFromStatus(apiErr.HTTPStatusCode), p.name, "%v", err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return domain.NewError(kindFromStatus(reqErr.HTTPStatusCode), p.name, "%v", err)
	}

	return domain.NewError(domain.ErrProviderUnreachable, p.name, "%v", err)
}
