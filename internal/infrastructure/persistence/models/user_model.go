package models

import (
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID          string         `gorm:"primaryKey;type:varchar(255)"`
	CreatedAt   time.Time      `gorm:"not null"`
	DisplayName *string        `gorm:"type:varchar(255)"`
	Preferences map[string]any `gorm:"serializer:json"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	prefs := m.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return &users.User{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		DisplayName: m.DisplayName,
		Preferences: prefs,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.CreatedAt = u.CreatedAt
	m.DisplayName = u.DisplayName
	m.Preferences = u.Preferences
}
