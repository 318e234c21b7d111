package domain

// SuggestionKind selects which artifact the orchestrator should generate
type SuggestionKind string

// suggestion kinds
const (
	SuggestKeywords        SuggestionKind = "keywords"
	SuggestTitle           SuggestionKind = "title"
	SuggestMetaDescription SuggestionKind = "meta_description"
	SuggestContentPoints   SuggestionKind = "content_points"
	SuggestFull            SuggestionKind = "full"
)

// Tone selects the writing style requested from the provider
type Tone string

// supported tones, Professional is the default
const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneCasual       Tone = "casual"
	ToneFormal       Tone = "formal"
)

// Intensity controls how far a rewrite may depart from the original
type Intensity string

// supported intensities, Moderate is the default
const (
	IntensityLight      Intensity = "light"
	IntensityModerate   Intensity = "moderate"
	IntensityAggressive Intensity = "aggressive"
)

// SuggestionOptions tunes prompt construction
type SuggestionOptions struct {
	Tone      Tone      `json:"tone,omitempty"`
	Intensity Intensity `json:"intensity,omitempty"`
	MaxItems  int       `json:"max_items,omitempty"`
}

// SuggestionRequest carries everything needed to generate one suggestion.
// Provider may name a configured provider explicitly; when empty the
// orchestrator walks the configured providers in priority order.
type SuggestionRequest struct {
	Kind     SuggestionKind    `json:"kind"`
	Content  ContentItem       `json:"content"`
	Keyword  string            `json:"keyword"`
	Provider string            `json:"provider,omitempty"`
	Options  SuggestionOptions `json:"options"`
}

// KeywordsResult holds extracted focus keyword candidates, most relevant first
type KeywordsResult struct {
	Keywords []string `json:"keywords"`
	Provider string   `json:"provider"`
}

// TitleResult holds a rewritten title
type TitleResult struct {
	Title    string `json:"title"`
	Provider string `json:"provider"`
}

// MetaDescriptionResult holds a rewritten meta description
type MetaDescriptionResult struct {
	Description string `json:"description"`
	Provider    string `json:"provider"`
}

// ContentPointsResult holds actionable content improvement points
type ContentPointsResult struct {
	Points   []string `json:"points"`
	Provider string   `json:"provider"`
}

// FullResult holds the outcome of a combined optimization request. Any subset
// of the fields may be populated; an empty field means that section was absent
// from the provider response, which is not an error by itself.
type FullResult struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Points      []string `json:"points,omitempty"`
	Provider    string   `json:"provider"`
}
