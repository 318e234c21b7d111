package domain

import "time"

// ContentItem is the analyzable view of a CMS content entry. The admin layer
// extracts these fields before calling the analyzer; the core never mutates it.
type ContentItem struct {
	ID              int64  `json:"id,omitempty"`
	Title           string `json:"title"`
	Body            string `json:"body"` // may contain markup
	Slug            string `json:"slug"`
	MetaDescription string `json:"meta_description"` // resolved description, empty when none is set
}

// FieldName identifies one analyzable attribute of a content item
type FieldName string

// analyzable fields
const (
	FieldTitle           FieldName = "title"
	FieldBody            FieldName = "body"
	FieldSlug            FieldName = "slug"
	FieldMetaDescription FieldName = "meta_description"
)

// FieldResult holds the outcome of analyzing a single field. Score is 100 when
// Issues is empty, otherwise 100 minus a fixed per-field penalty per issue,
// floored at 0.
type FieldResult struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
}

// Status is the coarse classification derived from the overall score
type Status string

// status levels
const (
	StatusGood    Status = "good"
	StatusOK      Status = "ok"
	StatusPoor    Status = "poor"
	StatusUnknown Status = "unknown"
)

// OverallResult combines the per-field results into a single score and status.
// Fields scoring 0 are excluded from the averaging denominator; when all are
// excluded the score is 0 and status unknown.
type OverallResult struct {
	Score      int                       `json:"score"`
	Status     Status                    `json:"status"`
	Fields     map[FieldName]FieldResult `json:"fields"`
	AnalyzedAt time.Time                 `json:"analyzed_at,omitzero"`
}
