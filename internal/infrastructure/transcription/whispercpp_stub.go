//go:build !whispercpp
// +build !whispercpp

package transcription

import (
	"github.com/voice-training/voice-training-service/internal/domain/transcripts"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// NewWhisperCppTranscriber reports ErrWhisperCppUnavailable; cgo inference is only
// compiled in with the whispercpp tag.
func NewWhisperCppTranscriber(settings *config.TranscriptionSettings, _ logger.Logger) (transcripts.Transcriber, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return nil, ErrWhisperCppUnavailable
}
