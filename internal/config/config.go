// Package config provides configuration types and defaults for jassbot.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lep/jassbot/internal/log"
	"github.com/lep/jassbot/internal/tracing"
	"github.com/lep/jassbot/internal/ui/styles"
)

// Config holds all configuration options for jassbot.
type Config struct {
	DB         string        `mapstructure:"db"`          // path to the jassdoc sqlite database
	API        string        `mapstructure:"api"`         // jassbot search API endpoint
	AutoReload bool          `mapstructure:"auto_reload"` // reload the vocabulary when the db changes
	LogLevel   string        `mapstructure:"log_level"`
	Server     ServerConfig  `mapstructure:"server"`
	Search     SearchConfig  `mapstructure:"search"`
	Cache      CacheConfig   `mapstructure:"cache"`
	UI         UIConfig      `mapstructure:"ui"`
	Theme      ThemeConfig   `mapstructure:"theme"`
	Tracing    TracingConfig `mapstructure:"tracing"`
}

// ServerConfig holds settings of `jassbot serve`.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// URLPrefix is where the routes are mounted, e.g. "/jassbot/".
	URLPrefix string `mapstructure:"url_prefix"`
	// BaseURL is the public origin used in opensearch.xml. Empty means derive it
	// from the request.
	BaseURL string `mapstructure:"base_url"`
}

// SearchConfig holds settings of the live search.
type SearchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds cache lifetimes.
type CacheConfig struct {
	MarkdownTTL time.Duration `mapstructure:"markdown_ttl"`
}

// UIConfig holds terminal output options.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig holds terminal color customization.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-latte", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens, keyed in dot notation
	// ("syntax.keyword"). Reading them requires viper's "::" key delimiter.
	Colors map[string]string `mapstructure:"colors"`
}

// Styles converts t for styles.ApplyTheme.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Colors: t.Colors}
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/jassbot/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// Provider converts t for tracing.NewProvider.
func (t TracingConfig) Provider() tracing.Config {
	return tracing.Config{
		Enabled:      t.Enabled,
		Exporter:     t.Exporter,
		FilePath:     t.FilePath,
		OTLPEndpoint: t.OTLPEndpoint,
		SampleRate:   t.SampleRate,
		ServiceName:  tracing.DefaultServiceName,
	}
}

// DefaultTracesFilePath returns ~/.config/jassbot/traces/traces.jsonl, or ""
// when the home directory is unknown.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "jassbot", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		DB:         "jass.db",
		API:        "http://localhost:3000/search",
		AutoReload: true,
		LogLevel:   "info",
		Server: ServerConfig{
			Addr:      "127.0.0.1:5000",
			URLPrefix: "/",
		},
		Search: SearchConfig{
			Debounce: 100 * time.Millisecond,
			Timeout:  10 * time.Second,
		},
		Cache: CacheConfig{
			MarkdownTTL: 30 * time.Minute,
		},
		UI: UIConfig{
			MarkdownStyle: "dark",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // derived at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Validate checks every section of c.
func (c Config) Validate() error {
	if c.DB == "" {
		return fmt.Errorf("db is required")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if err := ValidateServer(c.Server); err != nil {
		return err
	}
	if err := ValidateSearch(c.Search); err != nil {
		return err
	}
	if c.Cache.MarkdownTTL < 0 {
		return fmt.Errorf("cache.markdown_ttl must not be negative, got %v", c.Cache.MarkdownTTL)
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateServer checks server configuration for errors.
func ValidateServer(s ServerConfig) error {
	if s.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if s.URLPrefix != "" && !strings.HasPrefix(s.URLPrefix, "/") {
		return fmt.Errorf("server.url_prefix must start with \"/\", got %q", s.URLPrefix)
	}
	if s.BaseURL != "" && !strings.HasPrefix(s.BaseURL, "http://") && !strings.HasPrefix(s.BaseURL, "https://") {
		return fmt.Errorf("server.base_url must be an http or https URL, got %q", s.BaseURL)
	}
	return nil
}

// ValidateSearch checks search configuration for errors.
func ValidateSearch(s SearchConfig) error {
	if s.Debounce < 0 {
		return fmt.Errorf("search.debounce must not be negative, got %v", s.Debounce)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("search.timeout must be positive, got %v", s.Timeout)
	}
	return nil
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		return nil
	default:
		return fmt.Errorf("ui.markdown_style must be a glamour style name, got %q", ui.MarkdownStyle)
	}
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tc TracingConfig) error {
	if tc.SampleRate < 0.0 || tc.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tc.SampleRate)
	}

	if tc.Exporter != "" {
		switch tc.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tc.Exporter)
		}
	}

	// Path requirements only matter when tracing is on.
	if tc.Enabled {
		if tc.Exporter == "file" && tc.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tc.Exporter == "otlp" && tc.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# jassbot configuration

# Path to the jassdoc sqlite database (built by the jassdoc repository)
db: jass.db

# jassbot type-search API endpoint
api: http://localhost:3000/search

# Reload the highlighting vocabulary when the database file changes
auto_reload: true

# Log level when --debug is set: debug, info, warn, error
log_level: info

# Web server (jassbot serve)
server:
  addr: 127.0.0.1:5000
  url_prefix: /          # mount point, e.g. /jassbot/
  # base_url: https://lep.duckdns.org  # public origin for opensearch.xml

# Live search
search:
  debounce: 100ms        # wait this long after the last keystroke
  timeout: 10s           # per request timeout of the search API

cache:
  markdown_ttl: 30m      # how long rendered documentation stays cached

# Terminal output (jassbot doc, jassbot search)
ui:
  markdown_style: dark   # glamour style: dark (default) or light

# Terminal colors
theme:
  # preset: catppuccin-latte
  #
  # Available presets:
  #   default           - Default jassbot theme
  #   catppuccin-latte  - Light theme
  #   high-contrast     - High contrast for accessibility
  #
  # Override specific colors:
  # colors:
  #   syntax.keyword: "#FF79C6"
  #   syntax.native: "#8BE9FD"

# Distributed tracing of the web server
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/jassbot/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
