package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AnalysisSettings tunes the acoustic analysis of uploaded recordings.
type AnalysisSettings struct {
	FFmpegBinary string  `mapstructure:"ffmpeg_binary"`
	FMin         float64 `mapstructure:"fmin" validate:"gt=0"`
	FMax         float64 `mapstructure:"fmax" validate:"gtfield=FMin"`
	FrameLength  int     `mapstructure:"frame_length" validate:"min=256,max=16384"`
	HopLength    int     `mapstructure:"hop_length" validate:"min=1,ltefield=FrameLength"`
}

// Validate checks that all fields in AnalysisSettings are valid
func (s *AnalysisSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for AnalysisSettings: %w", err)
	}
	return nil
}
