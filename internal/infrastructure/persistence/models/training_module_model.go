package models

import (
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/modules"
)

// TrainingModuleModel is the GORM database model for training modules
type TrainingModuleModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"not null;type:varchar(255)"`
	Description string    `gorm:"type:text"`
	Level       string    `gorm:"not null;type:varchar(32)"`
	CreatedAt   time.Time `gorm:"not null"`
	Steps       []string  `gorm:"serializer:json"`
}

// TableName specifies the table name for GORM
func (TrainingModuleModel) TableName() string {
	return "training_modules"
}

// ToDomain converts GORM model to domain entity
func (m *TrainingModuleModel) ToDomain() *modules.TrainingModule {
	steps := m.Steps
	if steps == nil {
		steps = []string{}
	}
	return &modules.TrainingModule{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Level:       m.Level,
		CreatedAt:   m.CreatedAt,
		Steps:       steps,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TrainingModuleModel) FromDomain(t *modules.TrainingModule) {
	m.ID = t.ID
	m.Title = t.Title
	m.Description = t.Description
	m.Level = t.Level
	m.CreatedAt = t.CreatedAt
	m.Steps = t.Steps
}
