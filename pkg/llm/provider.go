package llm

import (
	"context"
	"time"

	"github.com/postwise/seoscope/pkg/domain"
)

// Provider is the gateway to one AI backend: send a prompt, get the raw
// completion text back. Implementations normalize their wire protocol and
// failure modes into domain errors; retry policy stays with the orchestrator.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error)
	Close() error
}

// Factory builds a provider gateway from its configuration
type Factory func(cfg domain.ProviderConfig, timeout time.Duration) (Provider, error)

// NewProvider builds the gateway matching the configured provider type
func NewProvider(cfg domain.ProviderConfig, timeout time.Duration) (Provider, error) {
	switch cfg.Type {
	case domain.ProviderGemini:
		return NewGeminiProvider(cfg, timeout)
	case domain.ProviderOpenAI, "":
		return NewOpenAIProvider(cfg, timeout), nil
	default:
		return nil, domain.NewError(domain.ErrProviderNotConfigured, cfg.Name, "unknown provider type %q", cfg.Type)
	}
}

// kindFromStatus maps an HTTP-level provider failure to an error kind
func kindFromStatus(code int) domain.ErrorKind {
	switch {
	case code == 401 || code == 403:
		return domain.ErrProviderAuth
	case code == 429:
		return domain.ErrProviderRateLimited
	case code >= 500:
		return domain.ErrProviderServer
	default:
		return domain.ErrProviderServer
	}
}
