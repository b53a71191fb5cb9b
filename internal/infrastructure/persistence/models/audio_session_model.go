package models

import (
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/sessions"
)

// AudioSessionModel is the GORM database model for uploaded recordings
type AudioSessionModel struct {
	ID               uint          `gorm:"primaryKey;autoIncrement"`
	UserID           string        `gorm:"not null;index;type:varchar(255)"`
	CreatedAt        time.Time     `gorm:"not null;index"`
	Filename         string        `gorm:"not null;type:varchar(1024)"`
	OriginalFilename string        `gorm:"not null;type:varchar(255)"`
	Transcription    string        `gorm:"type:text"`
	ModuleID         *uint         `gorm:"index"`
	Metrics          *MetricsModel `gorm:"foreignKey:SessionID"`
}

// TableName specifies the table name for GORM
func (AudioSessionModel) TableName() string {
	return "audio_sessions"
}

// ToDomain converts GORM model to domain entity
func (m *AudioSessionModel) ToDomain() *sessions.AudioSession {
	s := &sessions.AudioSession{
		ID:               m.ID,
		UserID:           m.UserID,
		CreatedAt:        m.CreatedAt,
		Filename:         m.Filename,
		OriginalFilename: m.OriginalFilename,
		Transcription:    m.Transcription,
		ModuleID:         m.ModuleID,
	}
	if m.Metrics != nil {
		s.Metrics = m.Metrics.ToDomain()
	}
	return s
}

// FromDomain converts domain entity to GORM model, including metrics when present
func (m *AudioSessionModel) FromDomain(s *sessions.AudioSession) {
	m.ID = s.ID
	m.UserID = s.UserID
	m.CreatedAt = s.CreatedAt
	m.Filename = s.Filename
	m.OriginalFilename = s.OriginalFilename
	m.Transcription = s.Transcription
	m.ModuleID = s.ModuleID
	m.Metrics = nil
	if s.Metrics != nil {
		m.Metrics = &MetricsModel{}
		m.Metrics.FromDomain(s.Metrics)
	}
}
