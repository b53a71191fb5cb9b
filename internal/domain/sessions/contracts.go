package sessions

import (
	"context"
	"io"
	"mime/multipart"
)

// UploadRequest carries one recording to process.
type UploadRequest struct {
	UserID   string
	ModuleID *uint
	File     *multipart.FileHeader
}

// AudioUploadService stores, transcribes and analyzes recordings.
type AudioUploadService interface {
	// Upload persists the recording and returns the session with transcription and metrics.
	// Transcription and analysis failures do not fail the upload.
	Upload(ctx context.Context, req *UploadRequest) (*AudioSession, error)
}

// AudioSessionService reads back stored sessions.
type AudioSessionService interface {
	// GetByID returns the session with its metrics.
	GetByID(ctx context.Context, sessionID uint) (*AudioSession, error)

	// DownloadByID returns the session together with the stored audio bytes.
	DownloadByID(ctx context.Context, sessionID uint) (*AudioSession, []byte, error)
}

// ProgressService aggregates a user's sessions over time.
type ProgressService interface {
	// UserProgress returns the user's sessions oldest first, each with metrics.
	UserProgress(ctx context.Context, userID string) ([]*AudioSession, error)
}

// AudioSessionRepository defines the persistence operations for sessions and their metrics.
type AudioSessionRepository interface {
	// Create inserts the session and, when set, its metrics in one transaction.
	Create(ctx context.Context, session *AudioSession) error
	// GetByID retrieves a session with metrics.
	GetByID(ctx context.Context, sessionID uint) (*AudioSession, error)
	// ListByUser lists a user's sessions with metrics, oldest first.
	ListByUser(ctx context.Context, userID string) ([]*AudioSession, error)
}

// AudioConnector stores raw recordings.
type AudioConnector interface {
	// Upload stores content for userID under fileName and returns its storage location.
	Upload(ctx context.Context, userID, fileName string, content io.Reader) (string, error)

	// Download retrieves the bytes at location.
	Download(ctx context.Context, location string) ([]byte, error)

	// Delete removes the recording at location.
	Delete(ctx context.Context, location string) error
}
