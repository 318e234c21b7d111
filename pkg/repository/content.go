package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/postwise/seoscope/pkg/domain"
)

// ContentRepository handles content-related database operations
type ContentRepository struct {
	db *sqlx.DB
}

// contentSQL represents a content item for SQL operations
type contentSQL struct {
	ID              int64     `db:"id"`
	Title           string    `db:"title"`
	Body            string    `db:"body"`
	Slug            string    `db:"slug"`
	MetaDescription string    `db:"meta_description"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// NewContentRepository creates a new content repository
func NewContentRepository(database *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: database}
}

// CreateContent inserts a new content item and sets its ID
func (r *ContentRepository) CreateContent(ctx context.Context, item *domain.ContentItem) error {
	query := `
		INSERT INTO contents (title, body, slug, meta_description)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query, item.Title, item.Body, item.Slug, item.MetaDescription)
	if err != nil {
		return fmt.Errorf("create content: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	item.ID = id
	return nil
}

// UpdateContent replaces the stored fields of an existing item
func (r *ContentRepository) UpdateContent(ctx context.Context, item *domain.ContentItem) error {
	query := `
		UPDATE contents
		SET title = ?, body = ?, slug = ?, meta_description = ?, updated_at = datetime('now')
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, item.Title, item.Body, item.Slug, item.MetaDescription, item.ID)
	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("content %d not found", item.ID)
	}
	return nil
}

// GetContent retrieves a content item by ID, nil when not found
func (r *ContentRepository) GetContent(ctx context.Context, id int64) (*domain.ContentItem, error) {
	var sqlItem contentSQL
	err := r.db.GetContext(ctx, &sqlItem, "SELECT * FROM contents WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	return toDomainContent(&sqlItem), nil
}

// ListContents retrieves content items, newest first
func (r *ContentRepository) ListContents(ctx context.Context, limit int) ([]*domain.ContentItem, error) {
	query := `
		SELECT * FROM contents
		ORDER BY updated_at DESC
		LIMIT ?
	`
	var sqlItems []contentSQL
	err := r.db.SelectContext(ctx, &sqlItems, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}

	items := make([]*domain.ContentItem, len(sqlItems))
	for i, item := range sqlItems {
		items[i] = toDomainContent(&item)
	}
	return items, nil
}

// DeleteContent removes a content item with its analysis and suggestion history
func (r *ContentRepository) DeleteContent(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for _, query := range []string{
		"DELETE FROM suggestions WHERE content_id = ?",
		"DELETE FROM analyses WHERE content_id = ?",
		"DELETE FROM contents WHERE id = ?",
	} {
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("delete content %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

func toDomainContent(s *contentSQL) *domain.ContentItem {
	return &domain.ContentItem{
		ID:              s.ID,
		Title:           s.Title,
		Body:            s.Body,
		Slug:            s.Slug,
		MetaDescription: s.MetaDescription,
	}
}
