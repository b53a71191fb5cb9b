package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxUploadBytes mirrors the 50MB request cap of the web client.
const DefaultMaxUploadBytes = 50 << 20

// DefaultAllowedExtensions lists the audio containers accepted for upload.
var DefaultAllowedExtensions = []string{"mp3", "mp4", "mpeg", "mpga", "m4a", "wav", "webm"}

// UploadSettings bounds what the upload endpoint accepts.
type UploadSettings struct {
	MaxBytes          int64    `mapstructure:"max_bytes" validate:"min=1"`
	AllowedExtensions []string `mapstructure:"allowed_extensions" validate:"min=1,dive,required,alphanum,lowercase"`
}

// Validate checks that all fields in UploadSettings are valid
func (s *UploadSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for UploadSettings: %w", err)
	}
	return nil
}
