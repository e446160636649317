package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewFileExporter_CreatesParentDirectories(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "nested", "dir", "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	_, err = os.Stat(tracePath)
	require.NoError(t, err, "trace file should be created with parent dirs")

	require.NoError(t, exporter.Shutdown(context.Background()))
}

func TestFileExporter_WritesValidJSONL(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	stub := tracetest.SpanStub{
		Name:      SpanPrefixOp + "vector.length",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(100 * time.Millisecond),
		Status: sdktrace.Status{
			Code: codes.Ok,
		},
		Attributes: []attribute.KeyValue{
			attribute.String(AttrOpID, "vector.length"),
			attribute.String(AttrSessionID, "session-1"),
			attribute.Bool(AttrDeterministic, true),
		},
	}

	err = exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()})
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))

	file, err := os.Open(tracePath)
	require.NoError(t, err)
	defer file.Close()

	var record SpanRecord
	require.NoError(t, json.NewDecoder(file).Decode(&record))

	require.Equal(t, "op.vector.length", record.Name)
	require.Equal(t, "OK", record.Status)
	require.True(t, record.DurationMs > 0)
	require.Equal(t, "vector.length", record.Attributes[AttrOpID])
	require.Equal(t, "session-1", record.Attributes[AttrSessionID])
	require.Equal(t, true, record.Attributes[AttrDeterministic])
}

func TestFileExporter_ErrorStatus(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	stub := tracetest.SpanStub{
		Name:      SpanPrefixOp + "geometry.boolean",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(5 * time.Millisecond),
		Status: sdktrace.Status{
			Code:        codes.Error,
			Description: "solids do not intersect",
		},
	}

	err = exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()})
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))

	content, err := os.ReadFile(tracePath)
	require.NoError(t, err)

	var record SpanRecord
	require.NoError(t, json.Unmarshal(content, &record))
	require.Equal(t, "ERROR", record.Status)
	require.Equal(t, "solids do not intersect", record.StatusMsg)
}

func TestFileExporter_AppendsToExistingFile(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")
	require.NoError(t, os.WriteFile(tracePath, []byte(`{"existing":"line"}`+"\n"), 0644))

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	stub := tracetest.SpanStub{
		Name:      SpanPrefixOp + "math.add",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Millisecond),
	}
	err = exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()})
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))

	file, err := os.Open(tracePath)
	require.NoError(t, err)
	defer file.Close()

	lines := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines++
	}
	require.Equal(t, 2, lines, "existing line plus one span")
}

func TestFileExporter_EmptyBatch(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	err = exporter.ExportSpans(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))

	content, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	require.Empty(t, content)
}

func TestFileExporter_ShutdownTwice(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()), "second shutdown is a no-op")
}
