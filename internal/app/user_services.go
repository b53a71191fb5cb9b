package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// userService implements the UserService interface
type userService struct {
	userRepo       users.UserRepository
	sessionRepo    sessions.AudioSessionRepository
	postRepo       community.PostRepository
	audioConnector sessions.AudioConnector
	logger         logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(
	userRepo users.UserRepository,
	sessionRepo sessions.AudioSessionRepository,
	postRepo community.PostRepository,
	audioConnector sessions.AudioConnector,
	logger logger.Logger,
) (users.UserService, error) {
	return &userService{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		postRepo:       postRepo,
		audioConnector: audioConnector,
		logger:         logger,
	}, nil
}

// Create stores a new user, generating a UUID when no ID was supplied.
func (s *userService) Create(ctx context.Context, req *users.CreateUserRequest) (*users.User, error) {
	id := uuid.NewString()
	if req.ID != nil && strings.TrimSpace(*req.ID) != "" {
		id = strings.TrimSpace(*req.ID)
	}

	prefs := req.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}

	user := &users.User{
		ID:          id,
		CreatedAt:   time.Now().UTC(),
		DisplayName: req.DisplayName,
		Preferences: prefs,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// DeleteByID removes the user's rows in one transaction, then their recordings.
// A recording that cannot be removed is logged and skipped.
func (s *userService) DeleteByID(ctx context.Context, userID string) error {
	owned, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	for _, session := range owned {
		if err := s.audioConnector.Delete(ctx, session.Filename); err != nil {
			s.logger.Warn("Failed to delete recording of removed user",
				"user_id", userID,
				"session_id", session.ID,
				"location", session.Filename,
				"error", err)
		}
	}

	s.logger.Info("User deleted", "user_id", userID, "sessions", len(owned))
	return nil
}

// Export gathers the user with all sessions, metrics and community posts.
func (s *userService) Export(ctx context.Context, userID string) (*users.DataExport, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list community posts: %w", err)
	}

	metrics := make([]*acoustics.Metrics, 0, len(owned))
	for _, session := range owned {
		if session.Metrics != nil {
			metrics = append(metrics, session.Metrics)
		}
	}

	return &users.DataExport{
		User:           user,
		Sessions:       owned,
		Metrics:        metrics,
		CommunityPosts: posts,
	}, nil
}
