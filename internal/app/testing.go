//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/transcripts"
	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/infrastructure/analysis"
	"github.com/voice-training/voice-training-service/internal/infrastructure/connector"
	"github.com/voice-training/voice-training-service/internal/infrastructure/persistence"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/testutil"
)

// stubTranscriber returns a fixed text or error.
type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) Transcribe(context.Context, string) (*transcripts.Transcript, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &transcripts.Transcript{Text: s.text}, nil
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	UserService    users.UserService
	UploadService  sessions.AudioUploadService
	SessionService sessions.AudioSessionService
	ProgressSvc    sessions.ProgressService
	ModuleService  modules.ModuleService
	PostService    community.PostService

	Transcriber    *stubTranscriber
	AudioConnector sessions.AudioConnector
	UploadDir      string
	DBContext      *persistence.TestContext
}

// SetupTestServices wires every service against a fresh database, a local audio store
// in a temp dir, a stub transcriber and the real analyzer.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	uploadDir := t.TempDir()

	audioConnector, err := connector.NewAudioConnector(context.Background(), &config.AudioConnectorSettings{
		CloudProvider: config.LocalStorageProvider,
		UploadDir:     uploadDir,
	}, log)
	require.NoError(t, err)

	analyzer, err := analysis.NewAnalyzer(&config.AnalysisSettings{
		FFmpegBinary: "ffmpeg",
		FMin:         80,
		FMax:         400,
		FrameLength:  2048,
		HopLength:    512,
	}, log)
	require.NoError(t, err)

	transcriber := &stubTranscriber{text: "hello world"}

	userService, err := NewUserService(dbContext.UserRepo, dbContext.SessionRepo, dbContext.PostRepo, audioConnector, log)
	require.NoError(t, err)

	uploadService, err := NewAudioUploadService(
		dbContext.UserRepo,
		dbContext.ModuleRepo,
		dbContext.SessionRepo,
		audioConnector,
		transcriber,
		analyzer,
		&config.UploadSettings{MaxBytes: 1 << 20, AllowedExtensions: config.DefaultAllowedExtensions},
		log,
	)
	require.NoError(t, err)

	sessionService, err := NewAudioSessionService(dbContext.SessionRepo, audioConnector, log)
	require.NoError(t, err)

	progressService, err := NewProgressService(dbContext.SessionRepo, log)
	require.NoError(t, err)

	moduleService, err := NewModuleService(dbContext.ModuleRepo, log)
	require.NoError(t, err)

	postService, err := NewPostService(dbContext.PostRepo, dbContext.UserRepo, dbContext.SessionRepo, log)
	require.NoError(t, err)

	return &TestServices{
		UserService:    userService,
		UploadService:  uploadService,
		SessionService: sessionService,
		ProgressSvc:    progressService,
		ModuleService:  moduleService,
		PostService:    postService,
		Transcriber:    transcriber,
		AudioConnector: audioConnector,
		UploadDir:      uploadDir,
		DBContext:      dbContext,
	}
}

// errTranscription is returned by a failing stub transcriber.
var errTranscription = errors.New("engine offline")
