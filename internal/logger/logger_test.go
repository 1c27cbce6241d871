package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdoutHandlerProduction(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newStdoutHandler(&buf, false))

	log.Debug("hidden")
	log.Info("directory created", "directory_id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "directory created", entry["msg"])
	assert.EqualValues(t, 7, entry["directory_id"])
}

func TestStdoutHandlerDevelopment(t *testing.T) {
	var buf bytes.Buffer
	h := newStdoutHandler(&buf, true)

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
	slog.New(h).Debug("resolving", "id", 3)
	assert.Contains(t, buf.String(), "msg=resolving id=3")
}

func TestFanout(t *testing.T) {
	var a, b bytes.Buffer
	ha := newStdoutHandler(&a, false)

	assert.Same(t, ha, fanout([]slog.Handler{ha}))

	slog.New(fanout([]slog.Handler{ha, newStdoutHandler(&b, false)})).Warn("both")
	assert.Contains(t, a.String(), "both")
	assert.Contains(t, b.String(), "both")
}

func TestInitWithoutSentry(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	Init(Options{AppName: "files", AppEnv: "development", IsDev: true})
	require.NotNil(t, Log)
	assert.Same(t, Log, slog.Default())
}
