package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSetting_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sub", "config.yaml")

	require.NoError(t, SaveSetting(configPath, "server.addr", ":8080"))

	cfg := loadConfigFromYAML(t, readFile(t, configPath))
	require.Equal(t, ":8080", cfg.Server.Addr)
}

func TestSaveSetting_PreservesOtherConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	initial := `# jassbot configuration
db: /srv/jass.db # generated nightly
auto_reload: true
server:
  addr: 127.0.0.1:5000
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0644))

	require.NoError(t, SaveSetting(configPath, "search.debounce", "250ms"))
	require.NoError(t, SaveSetting(configPath, "auto_reload", "false"))

	data := readFile(t, configPath)
	assert.Contains(t, data, "# jassbot configuration")
	assert.Contains(t, data, "# generated nightly")

	cfg := loadConfigFromYAML(t, data)
	require.Equal(t, "/srv/jass.db", cfg.DB)
	require.Equal(t, "127.0.0.1:5000", cfg.Server.Addr)
	require.Equal(t, 250*time.Millisecond, cfg.Search.Debounce)
	require.False(t, cfg.AutoReload)
}

func TestSaveSetting_ReplacesValue(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  addr: a\n  url_prefix: /\n"), 0644))

	require.NoError(t, SaveSetting(configPath, "server.addr", "b"))

	cfg := loadConfigFromYAML(t, readFile(t, configPath))
	require.Equal(t, "b", cfg.Server.Addr)
	require.Equal(t, "/", cfg.Server.URLPrefix)
}

func TestSaveSetting_ThemeColor(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveSetting(configPath, "theme.colors.syntax.keyword", "#FF0000"))

	data := readFile(t, configPath)
	assert.Contains(t, data, "syntax.keyword: '#FF0000'")
	cfg := loadConfigFromYAML(t, data)
	require.Equal(t, "#FF0000", cfg.Theme.Colors["syntax.keyword"])
}

func TestSaveSetting_NullSectionBecomesMapping(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("tracing:\n"), 0644))

	require.NoError(t, SaveSetting(configPath, "tracing.enabled", "true"))

	cfg := loadConfigFromYAML(t, readFile(t, configPath))
	require.True(t, cfg.Tracing.Enabled)
}

func TestSaveSetting_UnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveSetting(configPath, "server.port", "1")
	require.ErrorIs(t, err, ErrUnknownSetting)

	err = SaveSetting(configPath, "theme.colors.priority.critical", "#FF0000")
	require.ErrorIs(t, err, ErrUnknownSetting)

	_, statErr := os.Stat(configPath)
	require.True(t, os.IsNotExist(statErr), "nothing is written for a rejected key")
}

func TestSaveSetting_ScalarInTheWay(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: localhost\n"), 0644))

	err := SaveSetting(configPath, "server.addr", "x")
	require.ErrorContains(t, err, "server is not a mapping")
}

func TestSaveSetting_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [\n"), 0644))

	err := SaveSetting(configPath, "server.addr", "x")
	require.ErrorContains(t, err, "parsing config")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
