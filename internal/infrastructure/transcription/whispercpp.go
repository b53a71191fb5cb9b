package transcription

import (
	"errors"
	"strings"
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/transcripts"
)

// whisperSampleRate is the only input rate whisper.cpp models accept.
const whisperSampleRate = 16000

// ErrWhisperCppUnavailable is returned when the binary was built without the whispercpp tag.
var ErrWhisperCppUnavailable = errors.New("whispercpp provider requires a build with -tags whispercpp")

func toFloat32(samples []float64) []float32 {
	out := make([]float32, len(samples))
	for i, v := range samples {
		out[i] = float32(v)
	}
	return out
}

// newSegment converts whisper timestamps to a segment in seconds.
func newSegment(start, end time.Duration, text string) transcripts.Segment {
	return transcripts.Segment{
		Start: start.Seconds(),
		End:   end.Seconds(),
		Text:  strings.TrimSpace(text),
	}
}

// segmentText concatenates raw segment text the way whisper emits it.
func segmentText(raw []string) string {
	return strings.TrimSpace(strings.Join(raw, ""))
}
