// Package llm turns AI provider completions into structured SEO suggestions:
// prompt construction, provider gateways, lenient response parsing and the
// orchestration that ties them together with priority-ordered fallback.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/postwise/seoscope/pkg/domain"
)

// generation parameters per suggestion kind
const (
	tempExtract = 0.3 // keyword extraction wants determinism
	tempRewrite = 0.7 // rewrites want some variety

	tokensKeywords = 500
	tokensTitle    = 200
	tokensDesc     = 300
	tokensPoints   = 800
	tokensFull     = 1500

	maxKeywords      = 5
	defaultMaxPoints = 5
)

// Orchestrator is the entry point for AI suggestions. It selects a provider
// (explicit or priority-ordered fallback), builds the prompt, executes the
// call and parses the response into a typed result. It holds no mutable state
// and performs no persistence.
type Orchestrator struct {
	factory Factory
	timeout time.Duration
	retries int // attempts per provider for transient failures
}

// NewOrchestrator creates an orchestrator with the given per-call timeout and
// per-provider attempt count (minimum 1)
func NewOrchestrator(timeout time.Duration, retries int) *Orchestrator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if retries < 1 {
		retries = 1
	}
	return &Orchestrator{factory: NewProvider, timeout: timeout, retries: retries}
}

// GenerateKeywords extracts up to five focus keyword candidates from the
// content. An empty list after parsing is a failure, not an empty success.
func (o *Orchestrator) GenerateKeywords(ctx context.Context, req domain.SuggestionRequest, providers []domain.ProviderConfig) (*domain.KeywordsResult, error) {
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	text, name, err := o.complete(ctx, req.Provider, providers, KeywordsPrompt(req.Content, maxKeywords), tempExtract, tokensKeywords)
	if err != nil {
		return nil, err
	}

	keywords := ExtractList(text, maxKeywords)
	if len(keywords) == 0 {
		return nil, domain.NewError(domain.ErrParseEmpty, name, "no keywords found in response")
	}
	return &domain.KeywordsResult{Keywords: keywords, Provider: name}, nil
}

// OptimizeTitle rewrites the page title for the focus keyword
func (o *Orchestrator) OptimizeTitle(ctx context.Context, req domain.SuggestionRequest, providers []domain.ProviderConfig) (*domain.TitleResult, error) {
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}
	if req.Keyword == "" {
		return nil, domain.NewError(domain.ErrInvalidInput, "", "focus keyword is required")
	}

	text, name, err := o.complete(ctx, req.Provider, providers, TitlePrompt(req.Content, req.Keyword, req.Options), tempRewrite, tokensTitle)
	if err != nil {
		return nil, err
	}

	title := ExtractSingleValue(text)
	if title == "" {
		return nil, domain.NewError(domain.ErrParseEmpty, name, "no title found in response")
	}
	return &domain.TitleResult{Title: title, Provider: name}, nil
}

// OptimizeMetaDescription rewrites the meta description for the focus keyword
func (o *Orchestrator) OptimizeMetaDescription(ctx context.Context, req domain.SuggestionRequest, providers []domain.ProviderConfig) (*domain.MetaDescriptionResult, error) {
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}
	if req.Keyword == "" {
		return nil, domain.NewError(domain.ErrInvalidInput, "", "focus keyword is required")
	}

	text, name, err := o.complete(ctx, req.Provider, providers, MetaDescriptionPrompt(req.Content, req.Keyword, req.Options), tempRewrite, tokensDesc)
	if err != nil {
		return nil, err
	}

	desc := ExtractSingleValue(text)
	if desc == "" {
		return nil, domain.NewError(domain.ErrParseEmpty, name, "no description found in response")
	}
	return &domain.MetaDescriptionResult{Description: desc, Provider: name}, nil
}

// GenerateContentSuggestions produces actionable content improvement points
func (o *Orchestrator) GenerateContentSuggestions(ctx context.Context, req domain.SuggestionRequest, providers []domain.ProviderConfig) (*domain.ContentPointsResult, error) {
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}
	if req.Keyword == "" {
		return nil, domain.NewError(domain.ErrInvalidInput, "", "focus keyword is required")
	}

	maxItems := req.Options.MaxItems
	if maxItems <= 0 {
		maxItems = defaultMaxPoints
	}

	text, name, err := o.complete(ctx, req.Provider, providers, ContentPointsPrompt(req.Content, req.Keyword, req.Options, maxItems), tempRewrite, tokensPoints)
	if err != nil {
		return nil, err
	}

	points := ExtractList(text, maxItems)
	if len(points) == 0 {
		return nil, domain.NewError(domain.ErrParseEmpty, name, "no suggestions found in response")
	}
	return &domain.ContentPointsResult{Points: points, Provider: name}, nil
}

// GenerateFullOptimization runs a single combined request for title,
// description and content points. The combined prompt is always one provider
// call. Only a failed call is an error; a response with no recognizable
// sections comes back as a FullResult with all fields absent.
func (o *Orchestrator) GenerateFullOptimization(ctx context.Context, req domain.SuggestionRequest, providers []domain.ProviderConfig) (*domain.FullResult, error) {
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}
	if req.Keyword == "" {
		return nil, domain.NewError(domain.ErrInvalidInput, "", "focus keyword is required")
	}

	maxItems := req.Options.MaxItems
	if maxItems <= 0 {
		maxItems = defaultMaxPoints
	}

	text, name, err := o.complete(ctx, req.Provider, providers, FullPrompt(req.Content, req.Keyword, req.Options, maxItems), tempRewrite, tokensFull)
	if err != nil {
		return nil, err
	}

	sections := ExtractSections(text, maxItems)
	return &domain.FullResult{
		Title:       sections.Title,
		Description: sections.Description,
		Points:      sections.Points,
		Provider:    name,
	}, nil
}

// complete selects providers and runs the prompt against them. With an
// explicit provider there is no fallback; otherwise candidates are tried in
// ascending priority order and the first successful send wins.
func (o *Orchestrator) complete(ctx context.Context, explicit string, providers []domain.ProviderConfig, prompt string, temperature float32, maxTokens int) (text, provider string, err error) {
	candidates := selectProviders(explicit, providers)
	if len(candidates) == 0 {
		if explicit != "" {
			return "", "", domain.NewError(domain.ErrProviderNotConfigured, explicit, "provider not configured or disabled")
		}
		return "", "", domain.NewError(domain.ErrProviderNotConfigured, "", "no enabled provider with an API key")
	}

	var failures []string
	lastKind := domain.ErrProviderUnreachable
	for _, cfg := range candidates {
		text, err = o.callProvider(ctx, cfg, prompt, temperature, maxTokens)
		if err == nil {
			return text, cfg.Name, nil
		}
		if explicit != "" {
			return "", cfg.Name, err
		}

		log.Printf("[WARN] provider %s failed, trying next: %v", cfg.Name, err)
		failures = append(failures, fmt.Sprintf("%s: %v", cfg.Name, err))
		if kind := domain.KindOf(err); kind != "" {
			lastKind = kind
		}
	}

	return "", "", domain.NewError(lastKind, "", "all providers failed: %s", strings.Join(failures, "; "))
}

// callProvider builds the gateway and executes the call, retrying transient
// failures with backoff. Non-transient failures stop immediately.
func (o *Orchestrator) callProvider(ctx context.Context, cfg domain.ProviderConfig, prompt string, temperature float32, maxTokens int) (string, error) {
	gw, err := o.factory(cfg, o.timeout)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := gw.Close(); cerr != nil {
			log.Printf("[WARN] close provider %s: %v", cfg.Name, cerr)
		}
	}()

	var text string
	var permErr error
	retrier := repeater.NewBackoff(o.retries, 500*time.Millisecond, repeater.WithMaxDelay(5*time.Second))
	err = retrier.Do(ctx, func() error {
		res, cerr := gw.Complete(ctx, prompt, temperature, maxTokens)
		if cerr != nil {
			var de *domain.Error
			if errors.As(cerr, &de) && !de.Transient() {
				permErr = cerr // pointless to retry, stop here
				return nil
			}
			return cerr
		}
		text = res
		return nil
	})
	if err != nil {
		return "", err
	}
	if permErr != nil {
		return "", permErr
	}
	return text, nil
}

// selectProviders returns the candidates to try. With an explicit name only
// that provider qualifies; otherwise usable providers sorted by ascending
// priority.
func selectProviders(explicit string, providers []domain.ProviderConfig) []domain.ProviderConfig {
	var out []domain.ProviderConfig
	for _, p := range providers {
		if !p.Usable() {
			continue
		}
		if explicit != "" && p.Name != explicit {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func validateContent(content domain.ContentItem) error {
	if strings.TrimSpace(content.Title) == "" && strings.TrimSpace(content.Body) == "" {
		return domain.NewError(domain.ErrInvalidInput, "", "content has no title and no body")
	}
	return nil
}
