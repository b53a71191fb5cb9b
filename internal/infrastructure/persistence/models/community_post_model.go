package models

import (
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/community"
)

// CommunityPostModel is the GORM database model for community posts.
// IsAnonymous has no column default: GORM would otherwise replace an explicit false.
type CommunityPostModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	UserID         string    `gorm:"not null;index;type:varchar(255)"`
	CreatedAt      time.Time `gorm:"not null;index"`
	Title          *string   `gorm:"type:varchar(255)"`
	Body           *string   `gorm:"type:text"`
	AudioSessionID *uint     `gorm:"index"`
	IsAnonymous    bool      `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CommunityPostModel) TableName() string {
	return "community_posts"
}

// ToDomain converts GORM model to domain entity
func (m *CommunityPostModel) ToDomain() *community.Post {
	return &community.Post{
		ID:             m.ID,
		UserID:         m.UserID,
		CreatedAt:      m.CreatedAt,
		Title:          m.Title,
		Body:           m.Body,
		AudioSessionID: m.AudioSessionID,
		IsAnonymous:    m.IsAnonymous,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CommunityPostModel) FromDomain(p *community.Post) {
	m.ID = p.ID
	m.UserID = p.UserID
	m.CreatedAt = p.CreatedAt
	m.Title = p.Title
	m.Body = p.Body
	m.AudioSessionID = p.AudioSessionID
	m.IsAnonymous = p.IsAnonymous
}
