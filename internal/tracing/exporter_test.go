package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func readRecords(t *testing.T, path string) []SpanRecord {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var records []SpanRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec SpanRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestNewFileExporter_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "traces.jsonl")

	exporter, err := NewFileExporter(path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))
}

func TestFileExporter_WritesSpanTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")
	exporter, err := NewFileExporter(path)
	require.NoError(t, err)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	tracer := tp.Tracer("test")

	ctx, parent := tracer.Start(context.Background(), "parent", trace.WithSpanKind(trace.SpanKindServer))
	_, child := tracer.Start(ctx, "child")
	child.SetAttributes(attribute.String(AttrEntity, "CreateUnit"))
	child.AddEvent(EventCacheMiss)
	child.SetStatus(codes.Error, "boom")
	child.End()
	parent.SetStatus(codes.Ok, "")
	parent.End()

	require.NoError(t, tp.Shutdown(context.Background()))

	records := readRecords(t, path)
	require.Len(t, records, 2)

	c, p := records[0], records[1]
	require.Equal(t, "child", c.Name)
	require.Equal(t, p.SpanID, c.ParentSpanID)
	require.Equal(t, p.TraceID, c.TraceID)
	require.Equal(t, "INTERNAL", c.Kind)
	require.Equal(t, "ERROR", c.Status)
	require.Equal(t, "boom", c.StatusMsg)
	require.Equal(t, "CreateUnit", c.Attributes[AttrEntity])
	require.Len(t, c.Events, 1)
	require.Equal(t, EventCacheMiss, c.Events[0].Name)

	require.Equal(t, "parent", p.Name)
	require.Empty(t, p.ParentSpanID)
	require.Equal(t, "SERVER", p.Kind)
	require.Equal(t, "OK", p.Status)
}

func TestFileExporter_ExportAfterShutdown(t *testing.T) {
	exporter, err := NewFileExporter(filepath.Join(t.TempDir(), "traces.jsonl"))
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()), "second shutdown is a no-op")

	require.Error(t, exporter.ExportSpans(context.Background(), nil))
}
