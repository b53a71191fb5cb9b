package logger

import (
	"context"
	"log/slog"
	"os"
)

// LevelCritical sits above slog.LevelError for the "critical" setting.
const LevelCritical = slog.LevelError + 4

// slogLogger adapts *slog.Logger to Logger. Console and file loggers embed it.
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

func (l *slogLogger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

func (l *slogLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// Fatal logs at critical level and exits.
func (l *slogLogger) Fatal(msg string, args ...any) {
	l.logger.Log(context.Background(), LevelCritical, msg, args...)
	os.Exit(1)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}
