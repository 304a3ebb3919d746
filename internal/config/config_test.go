package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, "jass.db", cfg.DB)
	require.True(t, cfg.AutoReload)
	require.Equal(t, "127.0.0.1:5000", cfg.Server.Addr)
	require.Equal(t, "/", cfg.Server.URLPrefix)
	require.Equal(t, 100*time.Millisecond, cfg.Search.Debounce)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle)
	require.False(t, cfg.Tracing.Enabled)
	require.NoError(t, cfg.Validate(), "defaults must validate")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "missing db", mutate: func(c *Config) { c.DB = "" }, wantErr: "db is required"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log_level"},
		{name: "missing addr", mutate: func(c *Config) { c.Server.Addr = "" }, wantErr: "server.addr is required"},
		{name: "relative prefix", mutate: func(c *Config) { c.Server.URLPrefix = "jassbot/" }, wantErr: "server.url_prefix"},
		{name: "bad base url", mutate: func(c *Config) { c.Server.BaseURL = "ftp://x" }, wantErr: "server.base_url"},
		{name: "negative debounce", mutate: func(c *Config) { c.Search.Debounce = -time.Second }, wantErr: "search.debounce"},
		{name: "zero timeout", mutate: func(c *Config) { c.Search.Timeout = 0 }, wantErr: "search.timeout"},
		{name: "negative ttl", mutate: func(c *Config) { c.Cache.MarkdownTTL = -time.Second }, wantErr: "cache.markdown_ttl"},
		{name: "unknown style", mutate: func(c *Config) { c.UI.MarkdownStyle = "neon" }, wantErr: "ui.markdown_style"},
		{name: "sample rate", mutate: func(c *Config) { c.Tracing.SampleRate = 2 }, wantErr: "tracing.sample_rate"},
		{name: "exporter", mutate: func(c *Config) { c.Tracing.Exporter = "zipkin" }, wantErr: "tracing.exporter"},
		{
			name:    "file exporter without path",
			mutate:  func(c *Config) { c.Tracing.Enabled = true },
			wantErr: "tracing.file_path is required",
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.Exporter = "otlp"
				c.Tracing.OTLPEndpoint = ""
			},
			wantErr: "tracing.otlp_endpoint is required",
		},
		{name: "valid prefix", mutate: func(c *Config) { c.Server.URLPrefix = "/jassbot/" }},
		{name: "disabled tracing skips paths", mutate: func(c *Config) { c.Tracing.Exporter = "otlp"; c.Tracing.OTLPEndpoint = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTracingConfig_Provider(t *testing.T) {
	tc := TracingConfig{Enabled: true, Exporter: "stdout", SampleRate: 0.5}
	p := tc.Provider()
	require.True(t, p.Enabled)
	require.Equal(t, "stdout", p.Exporter)
	require.Equal(t, 0.5, p.SampleRate)
	require.Equal(t, "jassbot", p.ServiceName)
}

func TestDefaultTracesFilePath(t *testing.T) {
	path := DefaultTracesFilePath()
	if path == "" {
		t.Skip("no home directory")
	}
	require.True(t, filepath.IsAbs(path))
	require.Equal(t, "traces.jsonl", filepath.Base(path))
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	cfg := loadConfigFromYAML(t, DefaultConfigTemplate())
	want := Defaults()

	require.Equal(t, want.DB, cfg.DB)
	require.Equal(t, want.API, cfg.API)
	require.Equal(t, want.AutoReload, cfg.AutoReload)
	require.Equal(t, want.Server.Addr, cfg.Server.Addr)
	require.Equal(t, want.Server.URLPrefix, cfg.Server.URLPrefix)
	require.Equal(t, want.Search, cfg.Search)
	require.Equal(t, want.Cache, cfg.Cache)
	require.Equal(t, want.UI, cfg.UI)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}

// loadConfigFromYAML loads a Config the way cmd/root.go does.
func loadConfigFromYAML(t *testing.T, yaml string) Config {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0644))

	// "::" lets dotted keys like "syntax.keyword" live inside theme.colors.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg
}
