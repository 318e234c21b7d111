package domain

import (
	"encoding/json"
	"time"
)

// AnalysisRecord is a stored analysis for a content item
type AnalysisRecord struct {
	ContentID int64         `json:"content_id"`
	Keyword   string        `json:"keyword"`
	Result    OverallResult `json:"result"`
}

// SuggestionRecord is one stored entry of the suggestion history
type SuggestionRecord struct {
	ID        int64           `json:"id"`
	ContentID int64           `json:"content_id"`
	Kind      SuggestionKind  `json:"kind"`
	Keyword   string          `json:"keyword"`
	Provider  string          `json:"provider"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}
