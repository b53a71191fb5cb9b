package transcription

import (
	"fmt"

	"github.com/voice-training/voice-training-service/internal/domain/transcripts"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// NewTranscriber returns the engine selected by settings.Provider.
func NewTranscriber(settings *config.TranscriptionSettings, logger logger.Logger) (transcripts.Transcriber, error) {
	switch settings.Provider {
	case config.TranscriptionProviderHTTP:
		return NewHTTPTranscriber(settings, logger)
	case config.TranscriptionProviderCLI:
		return NewCLITranscriber(settings, logger)
	case config.TranscriptionProviderWhisperCpp:
		return NewWhisperCppTranscriber(settings, logger)
	case config.TranscriptionProviderNone:
		return NewNoopTranscriber(), nil
	default:
		return nil, fmt.Errorf("unsupported transcription provider: %s", settings.Provider)
	}
}
