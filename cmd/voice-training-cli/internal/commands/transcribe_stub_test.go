//go:build unit && !whispercpp
// +build unit,!whispercpp

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voice-training/voice-training-service/internal/infrastructure/transcription"
	"github.com/voice-training/voice-training-service/internal/pkg/testutil"
)

func TestTranscribeCmd_WhisperCppNotCompiledIn(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTestConfig(t, dir)
	wav := testutil.WriteSineWAV(t, dir, 220, 16000, 0.5)

	_, err := execute(t, cfg, "transcribe", "--provider", "whispercpp", "--model-path", "models/ggml-base.bin", wav)

	assert.ErrorIs(t, err, transcription.ErrWhisperCppUnavailable)
}
