//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/infrastructure/persistence/models"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
)

func TestUserSqliteRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	name := "Alex"

	user := &users.User{
		ID:          "alex",
		CreatedAt:   time.Now().UTC(),
		DisplayName: &name,
		Preferences: map[string]any{"theme": "dark"},
	}
	require.NoError(t, tc.UserRepo.Create(context.Background(), user))

	fetched, err := tc.UserRepo.GetByID(context.Background(), "alex")
	require.NoError(t, err)
	assert.Equal(t, "Alex", *fetched.DisplayName)
	assert.Equal(t, "dark", fetched.Preferences["theme"])
}

func TestUserSqliteRepository_CreateDuplicate(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, tc)

	dup := &users.User{ID: user.ID, CreatedAt: time.Now().UTC()}
	err := tc.UserRepo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, users.ErrUserExists)
}

func TestUserSqliteRepository_GetByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.UserRepo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserSqliteRepository_Create_InvalidUser(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.UserRepo.Create(context.Background(), &users.User{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUserSqliteRepository_DeleteByID_Cascades(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	owner := CreateTestUser(t, tc)
	other := CreateTestUser(t, tc)
	session := CreateTestSession(t, tc, owner.ID, time.Now().UTC(), 220)

	ownPost := &community.Post{UserID: owner.ID, CreatedAt: time.Now().UTC(), AudioSessionID: &session.ID, IsAnonymous: true}
	require.NoError(t, tc.PostRepo.Create(ctx, ownPost))
	sharedPost := &community.Post{UserID: other.ID, CreatedAt: time.Now().UTC(), AudioSessionID: &session.ID}
	require.NoError(t, tc.PostRepo.Create(ctx, sharedPost))

	require.NoError(t, tc.UserRepo.DeleteByID(ctx, owner.ID))

	_, err := tc.UserRepo.GetByID(ctx, owner.ID)
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	_, err = tc.SessionRepo.GetByID(ctx, session.ID)
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)

	var metricsCount int64
	require.NoError(t, tc.DB.Model(&models.MetricsModel{}).Where("session_id = ?", session.ID).Count(&metricsCount).Error)
	assert.Zero(t, metricsCount)

	posts, err := tc.PostRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, other.ID, posts[0].UserID)
	assert.Nil(t, posts[0].AudioSessionID)
}

func TestUserSqliteRepository_DeleteByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.UserRepo.DeleteByID(context.Background(), "missing")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestAudioSessionSqliteRepository_CreateWithMetrics(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, tc)

	session := CreateTestSession(t, tc, user.ID, time.Now().UTC(), 140)
	require.NotZero(t, session.ID)
	require.NotNil(t, session.Metrics)
	assert.Equal(t, session.ID, session.Metrics.SessionID)

	fetched, err := tc.SessionRepo.GetByID(context.Background(), session.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Metrics)
	assert.InDelta(t, 140, *fetched.Metrics.F0Mean, 1e-9)
	assert.Equal(t, "lower", *fetched.Metrics.PitchBand)
	assert.Nil(t, fetched.Metrics.RMSMean)
}

func TestAudioSessionSqliteRepository_CreateWithoutMetrics(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, tc)

	session := &sessions.AudioSession{
		UserID:           user.ID,
		CreatedAt:        time.Now().UTC(),
		Filename:         user.ID + "/a.wav",
		OriginalFilename: "a.wav",
	}
	require.NoError(t, tc.SessionRepo.Create(context.Background(), session))

	fetched, err := tc.SessionRepo.GetByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Metrics)
}

func TestAudioSessionSqliteRepository_ListByUser_OldestFirst(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, tc)
	other := CreateTestUser(t, tc)

	now := time.Now().UTC()
	later := CreateTestSession(t, tc, user.ID, now, 200)
	earlier := CreateTestSession(t, tc, user.ID, now.Add(-time.Hour), 150)
	CreateTestSession(t, tc, other.ID, now, 170)

	list, err := tc.SessionRepo.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, earlier.ID, list[0].ID)
	assert.Equal(t, later.ID, list[1].ID)
	assert.NotNil(t, list[0].Metrics)
}

func TestAudioSessionSqliteRepository_GetByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.SessionRepo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)
}

func TestModuleSqliteRepository_CreateListCount(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	count, err := tc.ModuleRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	module := &modules.TrainingModule{
		Title:     "Breathing",
		Level:     "beginner",
		CreatedAt: time.Now().UTC(),
		Steps:     []string{"Inhale", "Exhale"},
	}
	require.NoError(t, tc.ModuleRepo.Create(ctx, module))
	require.NotZero(t, module.ID)

	list, err := tc.ModuleRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"Inhale", "Exhale"}, list[0].Steps)

	fetched, err := tc.ModuleRepo.GetByID(ctx, module.ID)
	require.NoError(t, err)
	assert.Equal(t, "Breathing", fetched.Title)

	count, err = tc.ModuleRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestModuleSqliteRepository_GetByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.ModuleRepo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, modules.ErrModuleNotFound)
}

func TestPostSqliteRepository_ListNewestFirst(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	user := CreateTestUser(t, tc)

	now := time.Now().UTC()
	older := &community.Post{UserID: user.ID, CreatedAt: now.Add(-time.Minute), IsAnonymous: false}
	newer := &community.Post{UserID: user.ID, CreatedAt: now, IsAnonymous: true}
	require.NoError(t, tc.PostRepo.Create(ctx, older))
	require.NoError(t, tc.PostRepo.Create(ctx, newer))

	list, err := tc.PostRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.False(t, list[1].IsAnonymous)

	byUser, err := tc.PostRepo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
}
