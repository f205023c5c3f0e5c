package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piforge/claudeup/internal/adapters/logging"
	"github.com/piforge/claudeup/internal/ports"
)

func TestConsoleLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(
		logging.WithOutput(&buf),
		logging.WithTimestamp(false),
	)

	logger.Info(context.Background(), "step applied", ports.F("step", "apt:update"))

	assert.Equal(t, "[INFO] step applied step=apt:update\n", buf.String())
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(
		logging.WithOutput(&buf),
		logging.WithTimestamp(false),
		logging.WithLevel(ports.LevelWarn),
	)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden too")
	logger.Warn(context.Background(), "visible")

	assert.Equal(t, "[WARN] visible\n", buf.String())
}

func TestConsoleLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(
		logging.WithOutput(&buf),
		logging.WithTimestamp(false),
		logging.WithJSONFormat(true),
	)

	logger.Error(context.Background(), "step failed", ports.F("step", "docker:engine"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "step failed", entry["msg"])
	assert.Equal(t, "docker:engine", entry["step"])
}

func TestConsoleLogger_WithFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(
		logging.WithOutput(&buf),
		logging.WithTimestamp(false),
	)

	child := logger.With(ports.F("component", "scaffold"))
	child.Info(context.Background(), "workspace created", ports.F("root", "/home/pi/claude-workspace"))

	out := buf.String()
	assert.Contains(t, out, "component=scaffold")
	assert.Contains(t, out, "root=/home/pi/claude-workspace")
}

func TestConsoleLogger_SetLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(
		logging.WithOutput(&buf),
		logging.WithTimestamp(false),
	)

	logger.Debug(context.Background(), "hidden")
	logger.SetLevel(ports.LevelDebug)
	logger.Debug(context.Background(), "visible")

	assert.Equal(t, "[DEBUG] visible\n", buf.String())
}
