package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/postwise/seoscope/pkg/domain"
)

// AnalysisRepository handles analysis-related database operations
type AnalysisRepository struct {
	db *sqlx.DB
}

// analysisSQL represents an analysis row for SQL operations
type analysisSQL struct {
	ID         int64     `db:"id"`
	ContentID  int64     `db:"content_id"`
	Keyword    string    `db:"keyword"`
	Score      int       `db:"score"`
	Status     string    `db:"status"`
	Fields     fieldsSQL `db:"fields"`
	AnalyzedAt time.Time `db:"analyzed_at"`
}

// fieldsSQL is a JSON object of per-field results for SQL operations
type fieldsSQL map[domain.FieldName]domain.FieldResult

// Value implements driver.Valuer for database storage
func (f fieldsSQL) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for database retrieval
func (f *fieldsSQL) Scan(value interface{}) error {
	if value == nil {
		*f = fieldsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*f = fieldsSQL{}
		return nil
	}

	return json.Unmarshal(data, f)
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(database *sqlx.DB) *AnalysisRepository {
	return &AnalysisRepository{db: database}
}

// SaveAnalysis stores the latest analysis for a content item, replacing any
// previous one. Retries on SQLite lock contention.
func (r *AnalysisRepository) SaveAnalysis(ctx context.Context, rec *domain.AnalysisRecord) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO analyses (content_id, keyword, score, status, fields, analyzed_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(content_id) DO UPDATE SET
				keyword = excluded.keyword,
				score = excluded.score,
				status = excluded.status,
				fields = excluded.fields,
				analyzed_at = excluded.analyzed_at
		`
		_, err := r.db.ExecContext(ctx, query, rec.ContentID, rec.Keyword, rec.Result.Score,
			string(rec.Result.Status), fieldsSQL(rec.Result.Fields), rec.Result.AnalyzedAt)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("save analysis: %w", err)}
		}
		return nil
	})
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// GetAnalysis retrieves the stored analysis for a content item, nil when none exists
func (r *AnalysisRepository) GetAnalysis(ctx context.Context, contentID int64) (*domain.AnalysisRecord, error) {
	var row analysisSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM analyses WHERE content_id = ?", contentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return toDomainAnalysis(&row), nil
}

// ListAnalyses retrieves stored analyses with a score at or below the given
// ceiling, worst first. A ceiling of 100 lists everything.
func (r *AnalysisRepository) ListAnalyses(ctx context.Context, maxScore, limit int) ([]*domain.AnalysisRecord, error) {
	query := `
		SELECT * FROM analyses
		WHERE score <= ?
		ORDER BY score ASC, analyzed_at DESC
		LIMIT ?
	`
	var rows []analysisSQL
	err := r.db.SelectContext(ctx, &rows, query, maxScore, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}

	records := make([]*domain.AnalysisRecord, len(rows))
	for i, row := range rows {
		records[i] = toDomainAnalysis(&row)
	}
	return records, nil
}

func toDomainAnalysis(row *analysisSQL) *domain.AnalysisRecord {
	return &domain.AnalysisRecord{
		ContentID: row.ContentID,
		Keyword:   row.Keyword,
		Result: domain.OverallResult{
			Score:      row.Score,
			Status:     domain.Status(row.Status),
			Fields:     row.Fields,
			AnalyzedAt: row.AnalyzedAt,
		},
	}
}
