package persistence

import (
	"context"
	"fmt"

	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/infrastructure/persistence/models"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPostRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPostRepository creates a new GORM-based PostRepository implementation
func NewGormPostRepository(db *gorm.DB, logger logger.Logger) (community.PostRepository, error) {
	return &gormPostRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPostRepository) Create(ctx context.Context, post *community.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CommunityPostModel{}
	model.FromDomain(post)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create community post: %w", err)
	}
	post.ID = model.ID

	r.logger.Info("Created community post", "post_id", post.ID, "anonymous", post.IsAnonymous)
	return nil
}

func (r *gormPostRepository) List(ctx context.Context) ([]*community.Post, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *gormPostRepository) ListByUser(ctx context.Context, userID string) ([]*community.Post, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *gormPostRepository) find(query *gorm.DB) ([]*community.Post, error) {
	var modelList []*models.CommunityPostModel
	if err := query.Order("created_at desc").Order("id desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch community posts: %w", err)
	}

	domainList := make([]*community.Post, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
