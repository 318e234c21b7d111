package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/postwise/seoscope/pkg/domain"
)

// providersKey is the settings entry holding runtime provider overrides
const providersKey = "providers"

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = datetime('now')
	`
	_, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// GetProviders retrieves stored provider overrides, nil when none are stored
func (r *SettingRepository) GetProviders(ctx context.Context) ([]domain.ProviderConfig, error) {
	value, err := r.GetSetting(ctx, providersKey)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}

	var providers []domain.ProviderConfig
	if err := json.Unmarshal([]byte(value), &providers); err != nil {
		return nil, fmt.Errorf("parse stored providers: %w", err)
	}
	return providers, nil
}

// SaveProviders stores provider overrides as JSON
func (r *SettingRepository) SaveProviders(ctx context.Context, providers []domain.ProviderConfig) error {
	data, err := json.Marshal(providers)
	if err != nil {
		return fmt.Errorf("marshal providers: %w", err)
	}
	return r.SetSetting(ctx, providersKey, string(data))
}
