package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscraperpro/jobview/internal/logging"
)

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "jobview.log")

	result := logging.NewLoggerWithPath(logging.Config{
		Level:  "debug",
		Format: logging.FormatJSON,
		Output: logging.OutputFile,
		File:   path,
	})
	t.Cleanup(func() { _ = result.Close() })

	assert.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("hello")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestNewLoggerWithPath_FallbackToStderr(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	result := logging.NewLoggerWithPath(logging.Config{
		Output: logging.OutputFile,
		File:   filepath.Join(blocker, "jobview.log"),
	})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

func TestNewLoggerWithPath_LevelParsing(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			result := logging.NewLoggerWithPath(logging.Config{Level: tt.level})
			assert.Equal(t, tt.want, result.Logger.GetLevel())
		})
	}
}

func TestTraceIDHook(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Hook(logging.TraceIDHook{})

	ctx := logging.ContextWithTraceID(context.Background(), "trace-123")
	l.Info().Ctx(ctx).Msg("with trace")

	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
}

func TestGetOrGenerateTraceID(t *testing.T) {
	ctx := context.Background()
	generated := logging.GetOrGenerateTraceID(ctx)
	assert.Len(t, generated, 26)

	ctx = logging.ContextWithTraceID(ctx, generated)
	assert.Equal(t, generated, logging.GetOrGenerateTraceID(ctx))
	assert.NotEqual(t, generated, logging.NewTraceID())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	logging.FromContext(ctx).Info().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")

	// A bare context yields a usable logger rather than nil.
	assert.NotNil(t, logging.FromContext(context.Background()))
}
