package modules

import (
	"context"
	"errors"
	"time"

	"github.com/voice-training/voice-training-service/internal/pkg/validators"
)

// ErrModuleNotFound is returned when no training module has the requested ID.
var ErrModuleNotFound = errors.New("training module not found")

// TrainingModule is a guided exercise with ordered steps.
type TrainingModule struct {
	ID          uint
	Title       string    `validate:"required,max=255"`
	Description string    `validate:"max=4000"`
	Level       string    `validate:"required,modulelevel"`
	CreatedAt   time.Time `validate:"required"`
	Steps       []string  `validate:"dive,required,max=500"`
}

// Validate for validating TrainingModule struct
func (m *TrainingModule) Validate() error {
	return validators.ValidateStruct(m)
}

// CreateModuleRequest describes a new module. Level defaults to beginner, Steps to empty.
type CreateModuleRequest struct {
	Title       string
	Description string
	Level       string
	Steps       []string
}

// ModuleService manages the training catalogue.
type ModuleService interface {
	List(ctx context.Context) ([]*TrainingModule, error)
	Create(ctx context.Context, req *CreateModuleRequest) (*TrainingModule, error)
	// SeedDefaults inserts DefaultModules when the catalogue is empty and reports how many were added.
	SeedDefaults(ctx context.Context) (int, error)
}

// ModuleRepository defines the persistence operations for training modules.
type ModuleRepository interface {
	Create(ctx context.Context, module *TrainingModule) error
	List(ctx context.Context) ([]*TrainingModule, error)
	GetByID(ctx context.Context, moduleID uint) (*TrainingModule, error)
	Count(ctx context.Context) (int64, error)
}
