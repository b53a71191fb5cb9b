package community

import (
	"context"
	"errors"
	"time"

	"github.com/voice-training/voice-training-service/internal/pkg/validators"
)

// ErrMissingUserID is returned when a post does not name its author.
var ErrMissingUserID = errors.New("missing user_id")

// Post is a community message, optionally sharing an audio session.
type Post struct {
	ID             uint
	UserID         string    `validate:"required,max=255"`
	CreatedAt      time.Time `validate:"required"`
	Title          *string   `validate:"omitempty,max=255"`
	Body           *string   `validate:"omitempty,max=20000"`
	AudioSessionID *uint
	IsAnonymous    bool
}

// Validate for validating Post struct
func (p *Post) Validate() error {
	return validators.ValidateStruct(p)
}

// AuthorID returns the user ID to publish; anonymous posts hide it.
func (p *Post) AuthorID() *string {
	if p.IsAnonymous {
		return nil
	}
	id := p.UserID
	return &id
}

// CreatePostRequest describes a new post. IsAnonymous defaults to true when nil.
type CreatePostRequest struct {
	UserID         string
	Title          *string
	Body           *string
	AudioSessionID *uint
	IsAnonymous    *bool
}

// PostService manages community posts.
type PostService interface {
	// List returns all posts, newest first.
	List(ctx context.Context) ([]*Post, error)
	// Create publishes a post.
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)
}

// PostRepository defines the persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	// List returns all posts, newest first.
	List(ctx context.Context) ([]*Post, error)
	ListByUser(ctx context.Context, userID string) ([]*Post, error)
}
