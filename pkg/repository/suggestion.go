package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/postwise/seoscope/pkg/domain"
)

// SuggestionRepository handles suggestion history database operations
type SuggestionRepository struct {
	db *sqlx.DB
}

// suggestionSQL represents a suggestion row for SQL operations
type suggestionSQL struct {
	ID        int64     `db:"id"`
	ContentID int64     `db:"content_id"`
	Kind      string    `db:"kind"`
	Keyword   string    `db:"keyword"`
	Provider  string    `db:"provider"`
	Result    string    `db:"result"`
	CreatedAt time.Time `db:"created_at"`
}

// NewSuggestionRepository creates a new suggestion repository
func NewSuggestionRepository(database *sqlx.DB) *SuggestionRepository {
	return &SuggestionRepository{db: database}
}

// SaveSuggestion appends one entry to the suggestion history. The result is
// stored as JSON of the kind-specific result type.
func (r *SuggestionRepository) SaveSuggestion(ctx context.Context, rec *domain.SuggestionRecord) error {
	result := rec.Result
	if len(result) == 0 {
		result = json.RawMessage("{}")
	}

	query := `
		INSERT INTO suggestions (content_id, kind, keyword, provider, result)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query, rec.ContentID, string(rec.Kind), rec.Keyword, rec.Provider, string(result))
	if err != nil {
		return fmt.Errorf("save suggestion: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	rec.ID = id
	return nil
}

// ListSuggestions retrieves suggestion history for a content item, newest
// first. An empty kind matches all kinds.
func (r *SuggestionRepository) ListSuggestions(ctx context.Context, contentID int64, kind domain.SuggestionKind, limit int) ([]*domain.SuggestionRecord, error) {
	query := `
		SELECT * FROM suggestions
		WHERE content_id = ? AND (? = '' OR kind = ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	var rows []suggestionSQL
	err := r.db.SelectContext(ctx, &rows, query, contentID, string(kind), string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}

	records := make([]*domain.SuggestionRecord, len(rows))
	for i, row := range rows {
		records[i] = &domain.SuggestionRecord{
			ID:        row.ID,
			ContentID: row.ContentID,
			Kind:      domain.SuggestionKind(row.Kind),
			Keyword:   row.Keyword,
			Provider:  row.Provider,
			Result:    json.RawMessage(row.Result),
			CreatedAt: row.CreatedAt,
		}
	}
	return records, nil
}
