package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// SetupTestLogger initializes the process logger on first use and returns it scoped to t.
// Records are written at debug under -v and from warning upwards otherwise, so
// analysis and transcription failures still show up in plain test runs.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	level := config.LogLevelWarning
	if testing.Verbose() {
		level = config.LogLevelDebug
	}

	require.NoError(t, logger.InitLogger(&config.LoggerSettings{LogLevel: level, LogType: config.LogTypeConsole}))

	log, err := logger.GetLogger()
	require.NoError(t, err)
	return log.With("test", t.Name())
}
