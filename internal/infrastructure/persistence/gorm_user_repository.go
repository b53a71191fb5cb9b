package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/infrastructure/persistence/models"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user %s: %w", user.ID, users.ErrUserExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user", "user_id", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, users.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

// DeleteByID removes the user and everything that belongs to them in one transaction.
// Posts of other users that shared one of the deleted sessions keep existing without the reference.
func (r *gormUserRepository) DeleteByID(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UserModel{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to fetch user: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("user %s: %w", userID, users.ErrUserNotFound)
		}

		sessionIDs := tx.Model(&models.AudioSessionModel{}).Select("id").Where("user_id = ?", userID)

		if err := tx.Where("session_id IN (?)", sessionIDs).Delete(&models.MetricsModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete metrics: %w", err)
		}
		if err := tx.Model(&models.CommunityPostModel{}).
			Where("audio_session_id IN (?) AND user_id <> ?", sessionIDs, userID).
			Update("audio_session_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach shared sessions: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CommunityPostModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete community posts: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.AudioSessionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete audio sessions: %w", err)
		}
		if err := tx.Where("id = ?", userID).Delete(&models.UserModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted user", "user_id", userID)
	return nil
}
