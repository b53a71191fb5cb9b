package sessions

import (
	"errors"
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
	"github.com/voice-training/voice-training-service/internal/pkg/validators"
)

var (
	// ErrSessionNotFound is returned when no audio session has the requested ID.
	ErrSessionNotFound = errors.New("audio session not found")
	// ErrNoAudioFile is returned when an upload carries no file.
	ErrNoAudioFile = errors.New("no audio file")
	// ErrInvalidFileType is returned when an upload has a missing or disallowed extension.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrMissingUserID is returned when an upload does not name its user.
	ErrMissingUserID = errors.New("missing user_id")
	// ErrFileTooLarge is returned when an upload exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrAudioFileNotFound is returned when the stored recording of a session is gone.
	ErrAudioFileNotFound = errors.New("audio file not found")
)

// AudioSession is one uploaded recording together with its transcription.
type AudioSession struct {
	ID               uint
	UserID           string    `validate:"required,max=255"`
	CreatedAt        time.Time `validate:"required"`
	Filename         string    `validate:"required"`
	OriginalFilename string    `validate:"required,max=255"`
	Transcription    string
	ModuleID         *uint
	Metrics          *acoustics.Metrics
}

// Validate for validating AudioSession struct
func (s *AudioSession) Validate() error {
	return validators.ValidateStruct(s)
}
