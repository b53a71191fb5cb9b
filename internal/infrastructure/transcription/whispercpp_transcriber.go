//go:build whispercpp
// +build whispercpp

package transcription

import (
	"context"
	"fmt"
	"sync"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"github.com/voice-training/voice-training-service/internal/domain/transcripts"
	"github.com/voice-training/voice-training-service/internal/infrastructure/analysis"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

type whisperCppTranscriber struct {
	mu       sync.Mutex
	model    whisper.Model
	decoder  *analysis.Decoder
	language string
	logger   logger.Logger
}

// NewWhisperCppTranscriber loads the ggml model at settings.ModelPath and runs it in-process.
func NewWhisperCppTranscriber(settings *config.TranscriptionSettings, logger logger.Logger) (transcripts.Transcriber, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	model, err := whisper.New(settings.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load whisper model %s: %w", settings.ModelPath, err)
	}
	logger.Info("Loaded whisper.cpp model", "path", settings.ModelPath)

	return &whisperCppTranscriber{
		model:    model,
		decoder:  analysis.NewDecoder(settings.FFmpegBinary),
		language: settings.Language,
		logger:   logger,
	}, nil
}

func (t *whisperCppTranscriber) Transcribe(ctx context.Context, audioPath string) (*transcripts.Transcript, error) {
	samples, err := t.decoder.LoadAt(ctx, audioPath, whisperSampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio for whisper: %w", err)
	}

	// a model is shared; contexts are not safe to run concurrently against it
	t.mu.Lock()
	defer t.mu.Unlock()

	wctx, err := t.model.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create whisper context: %w", err)
	}
	if t.language != "" {
		if err := wctx.SetLanguage(t.language); err != nil {
			return nil, fmt.Errorf("failed to set whisper language %q: %w", t.language, err)
		}
	}

	var (
		raw      []string
		segments []transcripts.Segment
	)
	onSegment := func(seg whisper.Segment) {
		raw = append(raw, seg.Text)
		segments = append(segments, newSegment(seg.Start, seg.End, seg.Text))
	}

	if err := wctx.Process(toFloat32(samples), onSegment, nil); err != nil {
		return nil, fmt.Errorf("whisper inference failed: %w", err)
	}

	language := t.language
	if language == "" {
		language = wctx.DetectedLanguage()
	}

	t.logger.Debug("Transcribed recording", "path", audioPath, "segments", len(segments))
	return &transcripts.Transcript{
		Text:     segmentText(raw),
		Language: language,
		Segments: segments,
	}, nil
}

// Close releases the model.
func (t *whisperCppTranscriber) Close() error {
	return t.model.Close()
}
