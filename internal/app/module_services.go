package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
	"github.com/voice-training/voice-training-service/internal/pkg/validators"
)

// moduleService implements the ModuleService interface
type moduleService struct {
	moduleRepo modules.ModuleRepository
	logger     logger.Logger
}

// NewModuleService creates a new instance of ModuleService
func NewModuleService(moduleRepo modules.ModuleRepository, logger logger.Logger) (modules.ModuleService, error) {
	return &moduleService{moduleRepo: moduleRepo, logger: logger}, nil
}

func (s *moduleService) List(ctx context.Context) ([]*modules.TrainingModule, error) {
	list, err := s.moduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list training modules: %w", err)
	}
	return list, nil
}

func (s *moduleService) Create(ctx context.Context, req *modules.CreateModuleRequest) (*modules.TrainingModule, error) {
	level := req.Level
	if level == "" {
		level = validators.LevelBeginner
	}
	steps := req.Steps
	if steps == nil {
		steps = []string{}
	}

	module := &modules.TrainingModule{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Level:       level,
		CreatedAt:   time.Now().UTC(),
		Steps:       steps,
	}
	if err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, fmt.Errorf("failed to create training module: %w", err)
	}
	return module, nil
}

func (s *moduleService) SeedDefaults(ctx context.Context) (int, error) {
	count, err := s.moduleRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count training modules: %w", err)
	}
	if count > 0 {
		s.logger.Debug("Training modules already present, skipping seed", "count", count)
		return 0, nil
	}

	defaults := modules.DefaultModules()
	for i := range defaults {
		if _, err := s.Create(ctx, &defaults[i]); err != nil {
			return i, fmt.Errorf("failed to seed %q: %w", defaults[i].Title, err)
		}
	}

	s.logger.Info("Seeded default training modules", "count", len(defaults))
	return len(defaults), nil
}
