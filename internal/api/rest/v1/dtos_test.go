//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
	"github.com/voice-training/voice-training-service/internal/domain/community"
)

func TestCreateModuleRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateModuleRequest
		wantErr bool
	}{
		{"title only", CreateModuleRequest{Title: "Breath"}, false},
		{"full", CreateModuleRequest{Title: "Breath", Level: "intermediate", Steps: []string{"inhale", "exhale"}}, false},
		{"missing title", CreateModuleRequest{Level: "beginner"}, true},
		{"unknown level", CreateModuleRequest{Title: "Breath", Level: "expert"}, true},
		{"blank step", CreateModuleRequest{Title: "Breath", Steps: []string{""}}, true},
		{"title too long", CreateModuleRequest{Title: strings.Repeat("t", 256)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	empty := ""
	long := strings.Repeat("x", 256)

	assert.NoError(t, (&CreateUserRequest{}).Validate())
	assert.NoError(t, (&CreateUserRequest{ID: &empty}).Validate())
	assert.Error(t, (&CreateUserRequest{ID: &long}).Validate())
	assert.Error(t, (&CreateUserRequest{DisplayName: &long}).Validate())
}

func TestCreateUserRequest_RequestedID(t *testing.T) {
	empty, blank, alice := "", "   ", "alice"

	assert.Nil(t, (&CreateUserRequest{}).RequestedID())
	assert.Nil(t, (&CreateUserRequest{ID: &empty}).RequestedID())
	assert.Nil(t, (&CreateUserRequest{ID: &blank}).RequestedID())
	if id := (&CreateUserRequest{ID: &alice}).RequestedID(); assert.NotNil(t, id) {
		assert.Equal(t, "alice", *id)
	}
}

func TestCreatePostRequest_Validate(t *testing.T) {
	long := strings.Repeat("x", 256)

	assert.NoError(t, (&CreatePostRequest{UserID: "alice"}).Validate())
	assert.Error(t, (&CreatePostRequest{UserID: "alice", Title: &long}).Validate())
}

func TestNewMetricsResponse_Nil(t *testing.T) {
	resp := NewMetricsResponse(nil)
	assert.Nil(t, resp.F0Mean)
	assert.Nil(t, resp.PitchBand)
	assert.Nil(t, resp.AnalysisError)
}

func TestNewMetricsResponse_AnalysisError(t *testing.T) {
	resp := NewMetricsResponse(acoustics.EmptyMetrics("empty_audio"))
	if assert.NotNil(t, resp.AnalysisError) {
		assert.Equal(t, "empty_audio", *resp.AnalysisError)
	}
	assert.Nil(t, resp.RMSMean)
}

func TestNewPostResponse(t *testing.T) {
	anonymous := NewPostResponse(&community.Post{ID: 1, UserID: "alice", IsAnonymous: true})
	assert.Nil(t, anonymous.UserID)

	public := NewPostResponse(&community.Post{ID: 2, UserID: "bob"})
	if assert.NotNil(t, public.UserID) {
		assert.Equal(t, "bob", *public.UserID)
	}
}
