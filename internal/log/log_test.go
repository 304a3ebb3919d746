package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	now := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	line := format(now, LevelError, CatDB, "query failed", []any{"entity", "CreateUnit", "rows", 0})
	require.Equal(t, "2025-12-06T10:45:00 [ERROR] [db] query failed entity=CreateUnit rows=0\n", line)

	line = format(now, LevelInfo, CatHTTP, "request", []any{"path"})
	require.Equal(t, "2025-12-06T10:45:00 [INFO] [http] request path=<missing>\n", line)
}

func TestInitWriter_FiltersLevel(t *testing.T) {
	defer setDefault(nil)

	var buf bytes.Buffer
	InitWriter(&buf, LevelInfo)

	Debug(CatSyntax, "hidden")
	Info(CatSyntax, "shown", "rules", 3)
	ErrorErr(CatDB, "failed", errors.New("boom"))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[INFO] [syntax] shown rules=3")
	require.Contains(t, out, "[ERROR] [db] failed error=boom")
}

func TestSetEnabled(t *testing.T) {
	defer setDefault(nil)

	var buf bytes.Buffer
	InitWriter(&buf, LevelDebug)
	SetEnabled(false)
	Warn(CatCache, "dropped")
	SetEnabled(true)
	SetMinLevel(LevelError)
	Warn(CatCache, "dropped too")
	require.Empty(t, buf.String())
}

func TestInit_File(t *testing.T) {
	defer setDefault(nil)

	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatConfig, "loaded", "path", "config.yaml")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[config] loaded path=config.yaml")
}

func TestLog_Uninitialized(t *testing.T) {
	setDefault(nil)
	require.NotPanics(t, func() { Info(CatTUI, "nothing") })
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}
