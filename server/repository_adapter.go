package server

import (
	"context"

	"github.com/postwise/seoscope/pkg/domain"
	"github.com/postwise/seoscope/pkg/repository"
)

// RepositoryAdapter adapts repositories to the server.Store interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// CreateContent stores a new content item
func (r *RepositoryAdapter) CreateContent(ctx context.Context, item *domain.ContentItem) error {
	return r.repos.Content.CreateContent(ctx, item)
}

// UpdateContent replaces a stored content item
func (r *RepositoryAdapter) UpdateContent(ctx context.Context, item *domain.ContentItem) error {
	return r.repos.Content.UpdateContent(ctx, item)
}

// GetContent returns a stored content item, nil when not found
func (r *RepositoryAdapter) GetContent(ctx context.Context, id int64) (*domain.ContentItem, error) {
	return r.repos.Content.GetContent(ctx, id)
}

// ListContents returns stored content items, newest first
func (r *RepositoryAdapter) ListContents(ctx context.Context, limit int) ([]*domain.ContentItem, error) {
	return r.repos.Content.ListContents(ctx, limit)
}

// DeleteContent removes a content item with its analysis and history
func (r *RepositoryAdapter) DeleteContent(ctx context.Context, id int64) error {
	return r.repos.Content.DeleteContent(ctx, id)
}

// SaveAnalysis stores the latest analysis for a content item
func (r *RepositoryAdapter) SaveAnalysis(ctx context.Context, rec *domain.AnalysisRecord) error {
	return r.repos.Analysis.SaveAnalysis(ctx, rec)
}

// GetAnalysis returns the stored analysis for a content item, nil when absent
func (r *RepositoryAdapter) GetAnalysis(ctx context.Context, contentID int64) (*domain.AnalysisRecord, error) {
	return r.repos.Analysis.GetAnalysis(ctx, contentID)
}

// ListAnalyses returns stored analyses up to the score ceiling, worst first
func (r *RepositoryAdapter) ListAnalyses(ctx context.Context, maxScore, limit int) ([]*domain.AnalysisRecord, error) {
	return r.repos.Analysis.ListAnalyses(ctx, maxScore, limit)
}

// SaveSuggestion appends one suggestion history entry
func (r *RepositoryAdapter) SaveSuggestion(ctx context.Context, rec *domain.SuggestionRecord) error {
	return r.repos.Suggestion.SaveSuggestion(ctx, rec)
}

// ListSuggestions returns suggestion history for a content item
func (r *RepositoryAdapter) ListSuggestions(ctx context.Context, contentID int64, kind domain.SuggestionKind, limit int) ([]*domain.SuggestionRecord, error) {
	return r.repos.Suggestion.ListSuggestions(ctx, contentID, kind, limit)
}

// GetProviders returns stored provider overrides, nil when none are stored
func (r *RepositoryAdapter) GetProviders(ctx context.Context) ([]domain.ProviderConfig, error) {
	return r.repos.Setting.GetProviders(ctx)
}

// SaveProviders stores provider overrides
func (r *RepositoryAdapter) SaveProviders(ctx context.Context, providers []domain.ProviderConfig) error {
	return r.repos.Setting.SaveProviders(ctx, providers)
}
