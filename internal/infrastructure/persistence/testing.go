//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/testutil"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	UserRepo    users.UserRepository
	SessionRepo sessions.AudioSessionRepository
	ModuleRepo  modules.ModuleRepository
	PostRepo    community.PostRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup.
// Postgres runs in a throwaway container.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"}

	case config.PostgresDbType:
		ctx := context.Background()
		pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
			postgrescontainer.WithDatabase("voice_training"),
			postgrescontainer.WithUsername("postgres"),
			postgrescontainer.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(time.Minute)),
		)
		require.NoError(t, err, "Failed to start postgres container")
		t.Cleanup(func() { _ = pg.Terminate(ctx) })

		dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
		settings = config.DatabaseSettings{Type: config.PostgresDbType, DSN: dsn}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")
	t.Cleanup(func() { _ = CloseDB(db) })

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err)
	sessionRepo, err := NewGormAudioSessionRepository(db, log)
	require.NoError(t, err)
	moduleRepo, err := NewGormModuleRepository(db, log)
	require.NoError(t, err)
	postRepo, err := NewGormPostRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:          db,
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		ModuleRepo:  moduleRepo,
		PostRepo:    postRepo,
	}
}

// CreateTestUser persists a user with a random ID
func CreateTestUser(t *testing.T, tc *TestContext) *users.User {
	t.Helper()

	user := &users.User{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Preferences: map[string]any{},
	}
	require.NoError(t, tc.UserRepo.Create(context.Background(), user))
	return user
}

// CreateTestSession persists a session with metrics for userID
func CreateTestSession(t *testing.T, tc *TestContext, userID string, createdAt time.Time, f0 float64) *sessions.AudioSession {
	t.Helper()

	band := acoustics.ClassifyPitchBand(&f0)
	session := &sessions.AudioSession{
		UserID:           userID,
		CreatedAt:        createdAt,
		Filename:         userID + "/" + uuid.NewString()[:8] + "_take.wav",
		OriginalFilename: "take.wav",
		Transcription:    "hello",
		Metrics: &acoustics.Metrics{
			F0Mean:    &f0,
			PitchBand: &band,
		},
	}
	require.NoError(t, tc.SessionRepo.Create(context.Background(), session))
	return session
}
