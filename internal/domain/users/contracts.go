package users

import (
	"context"
)

// CreateUserRequest describes a user to create. A nil ID gets a generated UUID.
type CreateUserRequest struct {
	ID          *string
	DisplayName *string
	Preferences map[string]any
}

// UserService manages user profiles.
type UserService interface {
	// Create adds a user.
	Create(ctx context.Context, req *CreateUserRequest) (*User, error)

	// GetByID retrieves a user.
	GetByID(ctx context.Context, userID string) (*User, error)

	// DeleteByID removes a user with their sessions, metrics, posts and stored recordings.
	DeleteByID(ctx context.Context, userID string) error

	// Export collects all data stored for a user.
	Export(ctx context.Context, userID string) (*DataExport, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// GetByID retrieves a User from the database by ID
	GetByID(ctx context.Context, userID string) (*User, error)
	// DeleteByID removes the User and cascades to sessions, metrics and posts
	DeleteByID(ctx context.Context, userID string) error
}
