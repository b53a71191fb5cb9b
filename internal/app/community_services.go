package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// postService implements the PostService interface
type postService struct {
	postRepo    community.PostRepository
	userRepo    users.UserRepository
	sessionRepo sessions.AudioSessionRepository
	logger      logger.Logger
}

// NewPostService creates a new instance of PostService
func NewPostService(
	postRepo community.PostRepository,
	userRepo users.UserRepository,
	sessionRepo sessions.AudioSessionRepository,
	logger logger.Logger,
) (community.PostService, error) {
	return &postService{
		postRepo:    postRepo,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}, nil
}

func (s *postService) List(ctx context.Context) ([]*community.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list community posts: %w", err)
	}
	return posts, nil
}

// Create publishes a post after checking its author and shared session exist.
func (s *postService) Create(ctx context.Context, req *community.CreatePostRequest) (*community.Post, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, community.ErrMissingUserID
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if req.AudioSessionID != nil {
		if _, err := s.sessionRepo.GetByID(ctx, *req.AudioSessionID); err != nil {
			return nil, fmt.Errorf("failed to get audio session: %w", err)
		}
	}

	anonymous := true
	if req.IsAnonymous != nil {
		anonymous = *req.IsAnonymous
	}

	post := &community.Post{
		UserID:         req.UserID,
		CreatedAt:      time.Now().UTC(),
		Title:          req.Title,
		Body:           req.Body,
		AudioSessionID: req.AudioSessionID,
		IsAnonymous:    anonymous,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create community post: %w", err)
	}
	return post, nil
}
