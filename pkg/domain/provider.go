package domain

import "time"

// ProviderType selects the wire protocol used to talk to a provider
type ProviderType string

// supported provider protocols
const (
	ProviderOpenAI ProviderType = "openai" // any OpenAI-compatible chat completion endpoint
	ProviderGemini ProviderType = "gemini" // Google Gemini via the official SDK
)

// ProviderConfig describes one configured AI provider. Providers are tried in
// ascending Priority order; disabled entries and entries without a key are
// skipped. The core never mutates a config, it is re-read per request.
type ProviderConfig struct {
	Name     string       `yaml:"name" json:"name"`
	Type     ProviderType `yaml:"type" json:"type"`
	Endpoint string       `yaml:"endpoint" json:"endpoint,omitempty"` // optional base URL override
	APIKey   string       `yaml:"api_key" json:"api_key,omitempty"`
	Model    string       `yaml:"model" json:"model"`
	Enabled  bool         `yaml:"enabled" json:"enabled"`
	Priority int          `yaml:"priority" json:"priority"`
}

// Usable reports whether the provider can be tried at all
func (p ProviderConfig) Usable() bool {
	return p.Enabled && p.APIKey != ""
}

// Setting represents a key-value entry in the admin settings store
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
