package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandlerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelWarn))

	log.Info("hidden")
	log.Warn("romanization scheme failed", "error", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "romanization scheme failed")
	assert.Contains(t, out, "boom")
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelDebug)).With("surface", "cli")

	log.Debug("transform")
	assert.Contains(t, buf.String(), "surface")
	assert.Contains(t, buf.String(), "cli")
}

func TestNewJSONLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := newLogger(&buf, "json", "error")
	log.Warn("dropped")
	log.Error("translation failed", "error", "timeout")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "translation failed", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
}
