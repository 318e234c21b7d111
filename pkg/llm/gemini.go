package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/postwise/seoscope/pkg/domain"
)

// GeminiProvider talks to Google Gemini through the official SDK
type GeminiProvider struct {
	name    string
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiProvider creates a gateway for the Gemini API
func NewGeminiProvider(cfg domain.ProviderConfig, timeout time.Duration) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, domain.NewError(domain.ErrProviderNotConfigured, cfg.Name, "create gemini client: %v", err)
	}
	return &GeminiProvider{
		name:    cfg.Name,
		client:  client,
		model:   cfg.Model,
		timeout: timeout,
	}, nil
}

// Name returns the configured provider name
func (p *GeminiProvider) Name() string { return p.name }

// Complete sends the prompt and returns the generated text, concatenating
// text parts of the first candidate
func (p *GeminiProvider) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(int32(maxTokens)) //nolint:gosec // token limits are small

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", p.classify(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domain.NewError(domain.ErrParseEmpty, p.name, "no candidates in response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// Close releases the SDK client
func (p *GeminiProvider) Close() error { return p.client.Close() }

// classify normalizes SDK errors into the domain error taxonomy
func (p *GeminiProvider) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewError(domain.ErrProviderTimeout, p.name, "request timed out after %s", p.timeout)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return domain.NewError(kindFromStatus(apiErr.Code), p.name, "%v", err)
	}

	return domain.NewError(domain.ErrProviderUnreachable, p.name, "%v", err)
}
