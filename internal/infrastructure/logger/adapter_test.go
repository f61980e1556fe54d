package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AI Stock Trends", "AI_Stock_Trends"},
		{"  ", "run"},
		{"", "run"},
		{"go/rust?", "go_rust"},
		{strings.Repeat("a", 80), strings.Repeat("a", 60)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitize(tt.input), "input %q", tt.input)
	}
}

func TestLoggerAdapter_Fields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.WithField("stage", "reporter").Info("Fetched news", "count", 3)
	log.WithFields(map[string]any{"stage": "editorial", "model": "llama3"}).Error("Chat failed")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "Fetched news", entries[0].Message)
	assert.Equal(t, "reporter", first["stage"])
	assert.EqualValues(t, 3, first["count"])

	second := entries[1].ContextMap()
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, "editorial", second["stage"])
	assert.Equal(t, "llama3", second["model"])
}

func TestNewLoggerAdapter_FileOutput(t *testing.T) {
	dir := t.TempDir()

	log, err := NewLoggerAdapter(Config{Level: "debug", Dir: dir, Name: "AI Stock Trends"})
	require.NoError(t, err)

	log.Debug("hello", "key", "value")
	require.NoError(t, log.Close())

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasSuffix(files[0].Name(), "_AI_Stock_Trends.log"))

	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestNewLoggerAdapter_BadLevel(t *testing.T) {
	_, err := NewLoggerAdapter(Config{Level: "loud"})
	assert.Error(t, err)
}
