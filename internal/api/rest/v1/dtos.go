package v1

import (
	"strings"
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/pkg/validators"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IDResponse is returned when a resource is created.
type IDResponse struct {
	ID uint `json:"id"`
}

// StatusResponse reports the outcome of an action without a resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// InfoResponse describes the running service.
type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// CreateUserRequest is the body of POST /users. Every field is optional; a blank
// id means "generate one".
type CreateUserRequest struct {
	ID          *string        `json:"id" validate:"omitempty,max=255"`
	DisplayName *string        `json:"display_name" validate:"omitempty,max=255"`
	Preferences map[string]any `json:"preferences"`
}

// Validate for validating CreateUserRequest struct
func (r *CreateUserRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// RequestedID returns the caller's id, or nil when it is absent or blank.
func (r *CreateUserRequest) RequestedID() *string {
	if r.ID == nil || strings.TrimSpace(*r.ID) == "" {
		return nil
	}
	return r.ID
}

// CreateUserResponse is returned for a new user.
type CreateUserResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// UserResponse is the public profile of a user.
type UserResponse struct {
	ID          string    `json:"id"`
	DisplayName *string   `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// MetricsResponse lists the acoustic metrics of a session. Unknown values are null.
type MetricsResponse struct {
	F0Mean               *float64 `json:"f0_mean"`
	F0Median             *float64 `json:"f0_median"`
	F0Min                *float64 `json:"f0_min"`
	F0Max                *float64 `json:"f0_max"`
	F0Range              *float64 `json:"f0_range"`
	F0Std                *float64 `json:"f0_std"`
	PitchBand            *string  `json:"pitch_band"`
	RMSMean              *float64 `json:"rms_mean"`
	SpectralCentroidMean *float64 `json:"spectral_centroid_mean"`
	AnalysisError        *string  `json:"analysis_error"`
}

// NewMetricsResponse converts metrics; nil yields all-null values.
func NewMetricsResponse(m *acoustics.Metrics) MetricsResponse {
	if m == nil {
		return MetricsResponse{}
	}
	return MetricsResponse{
		F0Mean:               m.F0Mean,
		F0Median:             m.F0Median,
		F0Min:                m.F0Min,
		F0Max:                m.F0Max,
		F0Range:              m.F0Range,
		F0Std:                m.F0Std,
		PitchBand:            m.PitchBand,
		RMSMean:              m.RMSMean,
		SpectralCentroidMean: m.SpectralCentroidMean,
		AnalysisError:        m.AnalysisError,
	}
}

// UploadResponse is returned for a processed recording.
type UploadResponse struct {
	SessionID     uint            `json:"session_id"`
	Transcription string          `json:"transcription"`
	Metrics       MetricsResponse `json:"metrics"`
}

// SessionResponse describes a stored session.
type SessionResponse struct {
	SessionID        uint            `json:"session_id"`
	UserID           string          `json:"user_id"`
	CreatedAt        time.Time       `json:"created_at"`
	OriginalFilename string          `json:"original_filename"`
	Transcription    string          `json:"transcription"`
	ModuleID         *uint           `json:"module_id"`
	Metrics          MetricsResponse `json:"metrics"`
}

// NewSessionResponse converts a session.
func NewSessionResponse(s *sessions.AudioSession) SessionResponse {
	return SessionResponse{
		SessionID:        s.ID,
		UserID:           s.UserID,
		CreatedAt:        s.CreatedAt,
		OriginalFilename: s.OriginalFilename,
		Transcription:    s.Transcription,
		ModuleID:         s.ModuleID,
		Metrics:          NewMetricsResponse(s.Metrics),
	}
}

// ProgressEntry is one point on a user's progress timeline.
type ProgressEntry struct {
	SessionID     uint            `json:"session_id"`
	CreatedAt     time.Time       `json:"created_at"`
	Transcription string          `json:"transcription"`
	Metrics       MetricsResponse `json:"metrics"`
}

// ProgressResponse is the body of GET /progress/:user_id.
type ProgressResponse struct {
	Sessions []ProgressEntry `json:"sessions"`
}

// NewProgressResponse converts sessions in order.
func NewProgressResponse(list []*sessions.AudioSession) ProgressResponse {
	entries := make([]ProgressEntry, len(list))
	for i, s := range list {
		entries[i] = ProgressEntry{
			SessionID:     s.ID,
			CreatedAt:     s.CreatedAt,
			Transcription: s.Transcription,
			Metrics:       NewMetricsResponse(s.Metrics),
		}
	}
	return ProgressResponse{Sessions: entries}
}

// CreateModuleRequest is the body of POST /modules.
type CreateModuleRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"max=4000"`
	Level       string   `json:"level" validate:"omitempty,modulelevel"`
	Steps       []string `json:"steps" validate:"omitempty,dive,required,max=500"`
}

// Validate for validating CreateModuleRequest struct
func (r *CreateModuleRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ModuleResponse describes a training module.
type ModuleResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Level       string   `json:"level"`
	Steps       []string `json:"steps"`
}

// NewModuleResponse converts a module.
func NewModuleResponse(m *modules.TrainingModule) ModuleResponse {
	steps := m.Steps
	if steps == nil {
		steps = []string{}
	}
	return ModuleResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Level:       m.Level,
		Steps:       steps,
	}
}

// CreatePostRequest is the body of POST /community. IsAnonymous defaults to true.
type CreatePostRequest struct {
	UserID         string  `json:"user_id"`
	Title          *string `json:"title" validate:"omitempty,max=255"`
	Body           *string `json:"body" validate:"omitempty,max=20000"`
	AudioSessionID *uint   `json:"audio_session_id"`
	IsAnonymous    *bool   `json:"is_anonymous"`
}

// Validate for validating CreatePostRequest struct
func (r *CreatePostRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// PostResponse is a community post as listed publicly. UserID is null for anonymous posts.
type PostResponse struct {
	ID             uint      `json:"id"`
	UserID         *string   `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	Title          *string   `json:"title"`
	Body           *string   `json:"body"`
	AudioSessionID *uint     `json:"audio_session_id"`
	IsAnonymous    bool      `json:"is_anonymous"`
}

// NewPostResponse converts a post, hiding the author of anonymous posts.
func NewPostResponse(p *community.Post) PostResponse {
	return PostResponse{
		ID:             p.ID,
		UserID:         p.AuthorID(),
		CreatedAt:      p.CreatedAt,
		Title:          p.Title,
		Body:           p.Body,
		AudioSessionID: p.AudioSessionID,
		IsAnonymous:    p.IsAnonymous,
	}
}

// ExportUser is the full user record in a data export.
type ExportUser struct {
	ID          string         `json:"id"`
	DisplayName *string        `json:"display_name"`
	CreatedAt   time.Time      `json:"created_at"`
	Preferences map[string]any `json:"preferences"`
}

// ExportSession is a session row in a data export.
type ExportSession struct {
	ID               uint      `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	Transcription    string    `json:"transcription"`
	ModuleID         *uint     `json:"module_id"`
}

// ExportMetrics is a metrics row in a data export.
type ExportMetrics struct {
	SessionID uint `json:"session_id"`
	MetricsResponse
}

// ExportPost is a post in a data export; the owner always sees their ID.
type ExportPost struct {
	ID             uint      `json:"id"`
	UserID         string    `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	Title          *string   `json:"title"`
	Body           *string   `json:"body"`
	AudioSessionID *uint     `json:"audio_session_id"`
	IsAnonymous    bool      `json:"is_anonymous"`
}

// ExportResponse is everything stored about a user.
type ExportResponse struct {
	User           ExportUser      `json:"user"`
	Sessions       []ExportSession `json:"sessions"`
	Metrics        []ExportMetrics `json:"metrics"`
	CommunityPosts []ExportPost    `json:"community_posts"`
}

// NewExportResponse converts a data export.
func NewExportResponse(e *users.DataExport) ExportResponse {
	resp := ExportResponse{
		User: ExportUser{
			ID:          e.User.ID,
			DisplayName: e.User.DisplayName,
			CreatedAt:   e.User.CreatedAt,
			Preferences: e.User.Preferences,
		},
		Sessions:       make([]ExportSession, len(e.Sessions)),
		Metrics:        make([]ExportMetrics, len(e.Metrics)),
		CommunityPosts: make([]ExportPost, len(e.CommunityPosts)),
	}
	if resp.User.Preferences == nil {
		resp.User.Preferences = map[string]any{}
	}

	for i, s := range e.Sessions {
		resp.Sessions[i] = ExportSession{
			ID:               s.ID,
			CreatedAt:        s.CreatedAt,
			Filename:         s.Filename,
			OriginalFilename: s.OriginalFilename,
			Transcription:    s.Transcription,
			ModuleID:         s.ModuleID,
		}
	}
	for i, m := range e.Metrics {
		resp.Metrics[i] = ExportMetrics{SessionID: m.SessionID, MetricsResponse: NewMetricsResponse(m)}
	}
	for i, p := range e.CommunityPosts {
		resp.CommunityPosts[i] = ExportPost{
			ID:             p.ID,
			UserID:         p.UserID,
			CreatedAt:      p.CreatedAt,
			Title:          p.Title,
			Body:           p.Body,
			AudioSessionID: p.AudioSessionID,
			IsAnonymous:    p.IsAnonymous,
		}
	}
	return resp
}
