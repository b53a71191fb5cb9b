package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Transcription providers
const (
	TranscriptionProviderHTTP = "http"
	TranscriptionProviderCLI  = "cli"
	TranscriptionProviderNone = "none"
	// in-process whisper.cpp; needs the whispercpp build tag and libwhisper
	TranscriptionProviderWhisperCpp = "whispercpp"
)

// TranscriptionSettings configures the speech-to-text engine.
//
// The http provider talks to any OpenAI-compatible /v1/audio/transcriptions endpoint
// (a self-hosted whisper server or the hosted API). The cli provider shells out to the
// whisper command line tool. The whispercpp provider loads a ggml model from ModelPath
// and runs inference in-process.
type TranscriptionSettings struct {
	Provider  string        `mapstructure:"provider" validate:"required,oneof=http cli whispercpp none"`
	Model     string        `mapstructure:"model" validate:"required_unless=Provider none"`
	ModelPath string        `mapstructure:"model_path" validate:"required_if=Provider whispercpp"`
	BaseURL   string        `mapstructure:"base_url" validate:"required_if=Provider http,omitempty,url"`
	APIKey    string        `mapstructure:"api_key"`
	Binary    string        `mapstructure:"binary"`
	Language  string        `mapstructure:"language"`
	Timeout   time.Duration `mapstructure:"timeout"`
	// FFmpegBinary resamples non-16 kHz input for the whispercpp provider
	FFmpegBinary string `mapstructure:"ffmpeg_binary"`
}

// Validate checks that all fields in TranscriptionSettings are valid
func (s *TranscriptionSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for TranscriptionSettings: %w", err)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("transcription timeout must not be negative")
	}
	return nil
}
