// Package transcripts defines speech-to-text results and the engine contract.
package transcripts

import (
	"context"
	"strings"
)

// Segment is a timed portion of a transcription.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the result of transcribing one recording.
type Transcript struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// PlainText returns the transcript text, joining segments when the engine only returned those.
func (t *Transcript) PlainText() string {
	if t == nil {
		return ""
	}
	if text := strings.TrimSpace(t.Text); text != "" {
		return text
	}
	parts := make([]string, 0, len(t.Segments))
	for _, s := range t.Segments {
		if s := strings.TrimSpace(s.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Transcriber converts speech in an audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Transcript, error)
}
