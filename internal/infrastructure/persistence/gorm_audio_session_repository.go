package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/infrastructure/persistence/models"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAudioSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAudioSessionRepository creates a new GORM-based AudioSessionRepository implementation
func NewGormAudioSessionRepository(db *gorm.DB, logger logger.Logger) (sessions.AudioSessionRepository, error) {
	return &gormAudioSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAudioSessionRepository) Create(ctx context.Context, session *sessions.AudioSession) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AudioSessionModel{}
	model.FromDomain(session)
	metrics := model.Metrics
	model.Metrics = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create audio session: %w", err)
		}
		if metrics == nil {
			return nil
		}
		metrics.SessionID = model.ID
		if err := tx.Create(metrics).Error; err != nil {
			return fmt.Errorf("failed to create metrics: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	session.ID = model.ID
	if metrics != nil {
		session.Metrics.ID = metrics.ID
		session.Metrics.SessionID = model.ID
	}

	r.logger.Info("Created audio session", "session_id", session.ID, "user_id", session.UserID)
	return nil
}

func (r *gormAudioSessionRepository) GetByID(ctx context.Context, sessionID uint) (*sessions.AudioSession, error) {
	var model models.AudioSessionModel
	if err := r.db.WithContext(ctx).Preload("Metrics").Where("id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %d: %w", sessionID, sessions.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("failed to fetch audio session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAudioSessionRepository) ListByUser(ctx context.Context, userID string) ([]*sessions.AudioSession, error) {
	var modelList []*models.AudioSessionModel
	if err := r.db.WithContext(ctx).
		Preload("Metrics").
		Where("user_id = ?", userID).
		Order("created_at asc").Order("id asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch audio sessions: %w", err)
	}

	domainList := make([]*sessions.AudioSession, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
