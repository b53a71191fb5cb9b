package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/infrastructure/persistence/models"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormModuleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormModuleRepository creates a new GORM-based ModuleRepository implementation
func NewGormModuleRepository(db *gorm.DB, logger logger.Logger) (modules.ModuleRepository, error) {
	return &gormModuleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormModuleRepository) Create(ctx context.Context, module *modules.TrainingModule) error {
	if err := module.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TrainingModuleModel{}
	model.FromDomain(module)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create training module: %w", err)
	}
	module.ID = model.ID

	r.logger.Info("Created training module", "module_id", module.ID, "title", module.Title)
	return nil
}

func (r *gormModuleRepository) List(ctx context.Context) ([]*modules.TrainingModule, error) {
	var modelList []*models.TrainingModuleModel
	if err := r.db.WithContext(ctx).Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch training modules: %w", err)
	}

	domainList := make([]*modules.TrainingModule, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormModuleRepository) GetByID(ctx context.Context, moduleID uint) (*modules.TrainingModule, error) {
	var model models.TrainingModuleModel
	if err := r.db.WithContext(ctx).Where("id = ?", moduleID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("module %d: %w", moduleID, modules.ErrModuleNotFound)
		}
		return nil, fmt.Errorf("failed to fetch training module: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormModuleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TrainingModuleModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count training modules: %w", err)
	}
	return count, nil
}
