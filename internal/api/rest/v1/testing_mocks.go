//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/users"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, req *users.CreateUserRequest) (*users.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) Export(ctx context.Context, userID string) (*users.DataExport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.DataExport), args.Error(1)
}

// MockAudioUploadService is a mock implementation of AudioUploadService
type MockAudioUploadService struct {
	mock.Mock
}

func (m *MockAudioUploadService) Upload(ctx context.Context, req *sessions.UploadRequest) (*sessions.AudioSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.AudioSession), args.Error(1)
}

// MockAudioSessionService is a mock implementation of AudioSessionService
type MockAudioSessionService struct {
	mock.Mock
}

func (m *MockAudioSessionService) GetByID(ctx context.Context, sessionID uint) (*sessions.AudioSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.AudioSession), args.Error(1)
}

func (m *MockAudioSessionService) DownloadByID(ctx context.Context, sessionID uint) (*sessions.AudioSession, []byte, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*sessions.AudioSession), args.Get(1).([]byte), args.Error(2)
}

// MockProgressService is a mock implementation of ProgressService
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) UserProgress(ctx context.Context, userID string) ([]*sessions.AudioSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sessions.AudioSession), args.Error(1)
}

// MockModuleService is a mock implementation of ModuleService
type MockModuleService struct {
	mock.Mock
}

func (m *MockModuleService) List(ctx context.Context) ([]*modules.TrainingModule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*modules.TrainingModule), args.Error(1)
}

func (m *MockModuleService) Create(ctx context.Context, req *modules.CreateModuleRequest) (*modules.TrainingModule, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*modules.TrainingModule), args.Error(1)
}

func (m *MockModuleService) SeedDefaults(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockPostService is a mock implementation of PostService
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(ctx context.Context) ([]*community.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*community.Post), args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, req *community.CreatePostRequest) (*community.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Post), args.Error(1)
}

type testServices struct {
	users    *MockUserService
	upload   *MockAudioUploadService
	sessions *MockAudioSessionService
	progress *MockProgressService
	modules  *MockModuleService
	posts    *MockPostService
}

func newTestServices() *testServices {
	return &testServices{
		users:    new(MockUserService),
		upload:   new(MockAudioUploadService),
		sessions: new(MockAudioSessionService),
		progress: new(MockProgressService),
		modules:  new(MockModuleService),
		posts:    new(MockPostService),
	}
}

func (s *testServices) Services() Services {
	return Services{
		Users:    s.users,
		Upload:   s.upload,
		Sessions: s.sessions,
		Progress: s.progress,
		Modules:  s.modules,
		Posts:    s.posts,
	}
}
