package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/postwise/seoscope/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:seoscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Providers []domain.ProviderConfig `yaml:"providers" json:"providers" jsonschema:"description=AI providers in any order, priority decides fallback"`

	Suggest SuggestConfig `yaml:"suggest" json:"suggest" jsonschema:"description=Suggestion generation configuration"`

	Analyze AnalyzeConfig `yaml:"analyze" json:"analyze" jsonschema:"description=Analysis configuration"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`

	Scheduler SchedulerConfig `yaml:"scheduler" json:"scheduler" jsonschema:"description=Periodic re-analysis configuration"`

	MetaSources []string `yaml:"meta_sources" json:"meta_sources" jsonschema:"description=Ordered meta description sources checked before falling back to a body excerpt"`
}

// SuggestConfig holds suggestion-specific settings
type SuggestConfig struct {
	Timeout          time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per provider call timeout"`
	Retries          int           `yaml:"retries" json:"retries" jsonschema:"default=1,minimum=1,description=Attempts per provider for transient failures"`
	DefaultTone      string        `yaml:"default_tone" json:"default_tone" jsonschema:"default=professional,description=Tone used when a request does not set one"`
	DefaultIntensity string        `yaml:"default_intensity" json:"default_intensity" jsonschema:"default=moderate,description=Rewrite intensity used when a request does not set one"`
}

// AnalyzeConfig holds analysis-specific settings
type AnalyzeConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,minimum=1,description=Maximum concurrent items in a bulk analysis"`
	MaxBulkItems  int `yaml:"max_bulk_items" json:"max_bulk_items" jsonschema:"default=100,description=Maximum items accepted in one bulk analysis request"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable content extraction from URLs"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per page"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Seoscope/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
}

// SchedulerConfig holds periodic re-analysis settings
type SchedulerConfig struct {
	Enabled    bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable periodic re-analysis of stored content"`
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=Time between re-analysis sweeps"`
	BatchSize  int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=100,description=Maximum items per sweep"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Concurrent analyses per sweep"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:seoscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for suggestions
	if cfg.Suggest.Timeout == 0 {
		cfg.Suggest.Timeout = 30 * time.Second
	}
	if cfg.Suggest.Retries == 0 {
		cfg.Suggest.Retries = 1
	}
	if cfg.Suggest.DefaultTone == "" {
		cfg.Suggest.DefaultTone = string(domain.ToneProfessional)
	}
	if cfg.Suggest.DefaultIntensity == "" {
		cfg.Suggest.DefaultIntensity = string(domain.IntensityModerate)
	}

	// set defaults for analysis
	if cfg.Analyze.MaxConcurrent == 0 {
		cfg.Analyze.MaxConcurrent = 5
	}
	if cfg.Analyze.MaxBulkItems == 0 {
		cfg.Analyze.MaxBulkItems = 100
	}

	// set defaults for extraction
	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "Seoscope/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}

	// set defaults for the scheduler
	if cfg.Scheduler.Interval == 0 {
		cfg.Scheduler.Interval = time.Hour
	}
	if cfg.Scheduler.BatchSize == 0 {
		cfg.Scheduler.BatchSize = 100
	}
	if cfg.Scheduler.MaxWorkers == 0 {
		cfg.Scheduler.MaxWorkers = 4
	}

	// known platform meta fields checked in order, body excerpt is the final fallback
	if len(cfg.MetaSources) == 0 {
		cfg.MetaSources = []string{"yoast", "rankmath", "aioseo", "seopress", "squirrly", "platform"}
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate providers
	seen := map[string]bool{}
	for i, p := range cfg.Providers {
		if p.Name == "" {
			return fmt.Errorf("providers[%d].name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate provider name %q", p.Name)
		}
		seen[p.Name] = true
		switch p.Type {
		case domain.ProviderOpenAI, domain.ProviderGemini, "":
		default:
			return fmt.Errorf("provider %q has unknown type %q", p.Name, p.Type)
		}
	}

	// validate suggest config
	if cfg.Suggest.Retries < 1 {
		return fmt.Errorf("suggest.retries must be at least 1")
	}
	if cfg.Suggest.Timeout < time.Second {
		return fmt.Errorf("suggest.timeout must be at least 1 second")
	}

	// validate analyze config
	if cfg.Analyze.MaxConcurrent < 1 {
		return fmt.Errorf("analyze.max_concurrent must be at least 1")
	}

	// validate extraction config
	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return fmt.Errorf("extraction timeout must be at least 1 second")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return fmt.Errorf("extraction min_text_length must be non-negative")
		}
	}

	// validate scheduler config
	if cfg.Scheduler.Enabled && cfg.Scheduler.Interval < time.Minute {
		return fmt.Errorf("scheduler interval must be at least 1 minute")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetProviders returns the configured AI providers
func (c *Config) GetProviders() []domain.ProviderConfig {
	return c.Providers
}

// GetSuggestConfig returns suggestion generation configuration
func (c *Config) GetSuggestConfig() SuggestConfig {
	return c.Suggest
}

// GetAnalyzeLimits returns bulk analysis limits
func (c *Config) GetAnalyzeLimits() (maxConcurrent, maxBulkItems int) {
	return c.Analyze.MaxConcurrent, c.Analyze.MaxBulkItems
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// GetSchedulerConfig returns periodic re-analysis settings
func (c *Config) GetSchedulerConfig() SchedulerConfig {
	return c.Scheduler
}

// GetMetaSources returns the ordered meta description source names
func (c *Config) GetMetaSources() []string {
	return c.MetaSources
}
