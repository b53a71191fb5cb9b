package users

import (
	"errors"
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/pkg/validators"
)

var (
	// ErrUserNotFound is returned when no user has the requested ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when creating a user whose ID is taken.
	ErrUserExists = errors.New("user already exists")
)

// User is a person practicing with the app.
type User struct {
	ID          string    `validate:"required,max=255"`
	CreatedAt   time.Time `validate:"required"`
	DisplayName *string   `validate:"omitempty,max=255"`
	Preferences map[string]any
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(u)
}

// DataExport is everything stored about one user.
type DataExport struct {
	User           *User
	Sessions       []*sessions.AudioSession
	Metrics        []*acoustics.Metrics
	CommunityPosts []*community.Post
}
