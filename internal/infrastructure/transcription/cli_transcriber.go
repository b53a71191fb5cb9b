package transcription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/voice-training/voice-training-service/internal/domain/transcripts"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

const defaultWhisperBinary = "whisper"

type cliTranscriber struct {
	binary   string
	model    string
	language string
	logger   logger.Logger
}

// NewCLITranscriber runs the whisper command line tool and reads its JSON output.
func NewCLITranscriber(settings *config.TranscriptionSettings, logger logger.Logger) (transcripts.Transcriber, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	binary := settings.Binary
	if binary == "" {
		binary = defaultWhisperBinary
	}

	return &cliTranscriber{
		binary:   binary,
		model:    settings.Model,
		language: settings.Language,
		logger:   logger,
	}, nil
}

type whisperJSON struct {
	Text     string                `json:"text"`
	Language string                `json:"language"`
	Segments []transcripts.Segment `json:"segments"`
}

func (t *cliTranscriber) Transcribe(ctx context.Context, audioPath string) (*transcripts.Transcript, error) {
	outDir, err := os.MkdirTemp("", "whisper-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	args := []string{audioPath, "--model", t.model, "--output_format", "json", "--output_dir", outDir}
	if t.language != "" {
		args = append(args, "--language", t.language)
	}

	cmd := exec.CommandContext(ctx, t.binary, args...)
	if _, err := cmd.Output(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return nil, fmt.Errorf("whisper failed: %s", strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("failed to run whisper: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	raw, err := os.ReadFile(filepath.Join(outDir, base+".json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read whisper output: %w", err)
	}

	var parsed whisperJSON
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse whisper output: %w", err)
	}

	t.logger.Debug("Transcribed recording", "path", audioPath, "segments", len(parsed.Segments))
	return &transcripts.Transcript{
		Text:     strings.TrimSpace(parsed.Text),
		Language: parsed.Language,
		Segments: parsed.Segments,
	}, nil
}
