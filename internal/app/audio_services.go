package app

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/transcripts"
	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/observability"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
	"github.com/voice-training/voice-training-service/internal/pkg/validators"
)

// audioUploadService implements the AudioUploadService interface
type audioUploadService struct {
	userRepo       users.UserRepository
	moduleRepo     modules.ModuleRepository
	sessionRepo    sessions.AudioSessionRepository
	audioConnector sessions.AudioConnector
	transcriber    transcripts.Transcriber
	analyzer       acoustics.Analyzer
	settings       config.UploadSettings
	logger         logger.Logger
}

// NewAudioUploadService creates a new instance of AudioUploadService
func NewAudioUploadService(
	userRepo users.UserRepository,
	moduleRepo modules.ModuleRepository,
	sessionRepo sessions.AudioSessionRepository,
	audioConnector sessions.AudioConnector,
	transcriber transcripts.Transcriber,
	analyzer acoustics.Analyzer,
	settings *config.UploadSettings,
	logger logger.Logger,
) (sessions.AudioUploadService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &audioUploadService{
		userRepo:       userRepo,
		moduleRepo:     moduleRepo,
		sessionRepo:    sessionRepo,
		audioConnector: audioConnector,
		transcriber:    transcriber,
		analyzer:       analyzer,
		settings:       *settings,
		logger:         logger,
	}, nil
}

// Upload transcribes and analyzes the recording, stores it and persists the session with its metrics.
// Transcription failures yield an empty transcription; analysis failures yield empty metrics.
func (s *audioUploadService) Upload(ctx context.Context, req *sessions.UploadRequest) (*sessions.AudioSession, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if req.ModuleID != nil {
		if _, err := s.moduleRepo.GetByID(ctx, *req.ModuleID); err != nil {
			return nil, fmt.Errorf("failed to get training module: %w", err)
		}
	}

	start := time.Now()
	originalName := filepath.Base(req.File.Filename)

	tmpPath, err := spool(req.File)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			s.logger.Warn("Failed to remove spooled upload", "path", tmpPath, "error", err)
		}
	}()

	transcription := s.transcribe(ctx, tmpPath, req.UserID)
	metrics := s.analyzer.Analyze(ctx, tmpPath)
	recordAnalysis(metrics)

	location, err := s.store(ctx, req.UserID, originalName, tmpPath)
	if err != nil {
		return nil, err
	}

	session := &sessions.AudioSession{
		UserID:           req.UserID,
		CreatedAt:        time.Now().UTC(),
		Filename:         location,
		OriginalFilename: originalName,
		Transcription:    transcription,
		ModuleID:         req.ModuleID,
		Metrics:          metrics,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		if delErr := s.audioConnector.Delete(ctx, location); delErr != nil {
			s.logger.Warn("Failed to remove orphaned recording", "location", location, "error", delErr)
		}
		return nil, fmt.Errorf("failed to save audio session: %w", err)
	}

	observability.RecordUpload(time.Since(start))
	s.logger.Info("Audio session created",
		"session_id", session.ID,
		"user_id", session.UserID,
		"location", location,
		"transcribed", transcription != "",
		"analysis_error", metrics.AnalysisError != nil)

	return session, nil
}

func (s *audioUploadService) validate(req *sessions.UploadRequest) error {
	if req == nil || req.File == nil {
		return sessions.ErrNoAudioFile
	}
	if strings.TrimSpace(req.UserID) == "" {
		return sessions.ErrMissingUserID
	}
	if req.File.Filename == "" || !validators.IsAllowedAudioFile(req.File.Filename, s.settings.AllowedExtensions) {
		return fmt.Errorf("%q: %w", req.File.Filename, sessions.ErrInvalidFileType)
	}
	if req.File.Size > s.settings.MaxBytes {
		return fmt.Errorf("%d bytes exceeds %d: %w", req.File.Size, s.settings.MaxBytes, sessions.ErrFileTooLarge)
	}
	return nil
}

func (s *audioUploadService) transcribe(ctx context.Context, path, userID string) string {
	transcript, err := s.transcriber.Transcribe(ctx, path)
	if err != nil {
		observability.RecordTranscriptionFailure()
		s.logger.Warn("Transcription failed, storing empty text", "user_id", userID, "error", err)
		return ""
	}
	return transcript.PlainText()
}

func (s *audioUploadService) store(ctx context.Context, userID, name, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to reopen spooled upload: %w", err)
	}
	defer func() { _ = f.Close() }()

	location, err := s.audioConnector.Upload(ctx, userID, name, f)
	if err != nil {
		return "", fmt.Errorf("failed to store recording: %w", err)
	}
	return location, nil
}

// spool copies the upload to a temp file that keeps the original extension,
// which the transcription and decoding engines use to detect the container.
func spool(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.CreateTemp("", "upload-*"+strings.ToLower(filepath.Ext(fh.Filename)))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("failed to spool upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return dst.Name(), nil
}

func recordAnalysis(m *acoustics.Metrics) {
	var reason, band string
	if m.AnalysisError != nil {
		reason, _, _ = strings.Cut(*m.AnalysisError, ":")
	}
	if m.PitchBand != nil {
		band = *m.PitchBand
	}
	observability.RecordAnalysis(reason, band)
}

// audioSessionService implements the AudioSessionService interface
type audioSessionService struct {
	sessionRepo    sessions.AudioSessionRepository
	audioConnector sessions.AudioConnector
	logger         logger.Logger
}

// NewAudioSessionService creates a new instance of AudioSessionService
func NewAudioSessionService(sessionRepo sessions.AudioSessionRepository, audioConnector sessions.AudioConnector, logger logger.Logger) (sessions.AudioSessionService, error) {
	return &audioSessionService{
		sessionRepo:    sessionRepo,
		audioConnector: audioConnector,
		logger:         logger,
	}, nil
}

func (s *audioSessionService) GetByID(ctx context.Context, sessionID uint) (*sessions.AudioSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get audio session: %w", err)
	}
	return session, nil
}

func (s *audioSessionService) DownloadByID(ctx context.Context, sessionID uint) (*sessions.AudioSession, []byte, error) {
	session, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.audioConnector.Download(ctx, session.Filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to download recording: %w", err)
	}
	return session, data, nil
}

// progressService implements the ProgressService interface
type progressService struct {
	sessionRepo sessions.AudioSessionRepository
	logger      logger.Logger
}

// NewProgressService creates a new instance of ProgressService
func NewProgressService(sessionRepo sessions.AudioSessionRepository, logger logger.Logger) (sessions.ProgressService, error) {
	return &progressService{sessionRepo: sessionRepo, logger: logger}, nil
}

// UserProgress lists the user's sessions oldest first. An unknown user has no sessions.
func (s *progressService) UserProgress(ctx context.Context, userID string) ([]*sessions.AudioSession, error) {
	list, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return list, nil
}
