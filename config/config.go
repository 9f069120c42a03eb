// Package config loads the YAML job file describing one localization run.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config describes a full localization job: where the source document and
// dictionaries come from, which languages to generate, and how page-hash
// caching and gap filling behave.
type Config struct {
	SourceURL  string `yaml:"source_url"`  // Source document to fetch
	SourceFile string `yaml:"source_file"` // Local file alternative to source_url
	SourceLang string `yaml:"source_lang"` // Default "en"
	SourceDict string `yaml:"source_dict"` // Path to the source-language dictionary
	OutputDir  string `yaml:"output_dir"`  // Default "out"
	Title      string `yaml:"title"`       // Index page title; falls back to the source page title

	AllowedTags []string `yaml:"allowed_tags"` // Override for the element allow-list
	VoidTags    []string `yaml:"void_tags"`    // Override for void element names

	Languages []Language `yaml:"languages"`
	Cache     Cache      `yaml:"cache"`
	Fill      Fill       `yaml:"fill"`
}

// Language selects one target language and its dictionary file. Dictionary
// format is inferred from the file extension (.csv or .json).
type Language struct {
	Code string `yaml:"code"`
	Dict string `yaml:"dict"`
}

// Cache selects the page cache backend: "memory", "sqlite", "redis", or
// "none".
type Cache struct {
	Backend  string `yaml:"backend"`
	TTL      int    `yaml:"ttl"`       // Seconds; 0 = no expiration
	Path     string `yaml:"path"`      // SQLite database path
	RedisURL string `yaml:"redis_url"` // Redis connection URL
}

// Fill configures the optional gap-fill backend.
type Fill struct {
	Enabled           bool   `yaml:"enabled"`
	Model             string `yaml:"model"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - config path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SourceLang == "" {
		c.SourceLang = "en"
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.Path == "" {
		c.Cache.Path = "lexiloc.db"
	}
}

func (c *Config) validate() error {
	if c.SourceURL == "" && c.SourceFile == "" {
		return fmt.Errorf("config: one of source_url or source_file is required")
	}
	if c.SourceDict == "" {
		return fmt.Errorf("config: source_dict is required")
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("config: at least one language is required")
	}
	for i, lang := range c.Languages {
		if lang.Code == "" {
			return fmt.Errorf("config: languages[%d]: code is required", i)
		}
		if lang.Dict == "" {
			return fmt.Errorf("config: languages[%d]: dict is required", i)
		}
	}
	switch c.Cache.Backend {
	case "memory", "sqlite", "redis", "none":
	default:
		return fmt.Errorf("config: unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.RedisURL == "" {
		return fmt.Errorf("config: cache.redis_url is required for the redis backend")
	}
	return nil
}
