package transcription

import (
	"context"

	"github.com/voice-training/voice-training-service/internal/domain/transcripts"
)

type noopTranscriber struct{}

// NewNoopTranscriber returns a Transcriber that always yields an empty transcript.
func NewNoopTranscriber() transcripts.Transcriber {
	return noopTranscriber{}
}

func (noopTranscriber) Transcribe(context.Context, string) (*transcripts.Transcript, error) {
	return &transcripts.Transcript{}, nil
}
