//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/voice-training/voice-training-service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, config.LogLevelInfo)

	logger.Debug("debug message")
	logger.Info("info message", "session_id", 42)
	logger.Warn("warn message")
	logger.Error("error message", "error", "boom")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "session_id=42")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error=boom")
}

func TestConsoleLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, config.LogLevelDebug)

	child := logger.With("component", "audio")
	child.Debug("spooled upload")

	assert.Contains(t, buf.String(), "component=audio")
	assert.Contains(t, buf.String(), "spooled upload")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}
