//go:build integration
// +build integration

package connector

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/testutil"
)

func newAzureConnector(t *testing.T) sessions.AudioConnector {
	t.Helper()
	settings := &config.AudioConnectorSettings{
		CloudProvider:    config.AzureCloudProvider,
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
	}

	c, err := NewAudioConnector(context.Background(), settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return c
}

func TestAzureAudioConnector_RoundTrip(t *testing.T) {
	c := newAzureConnector(t)
	ctx := context.Background()
	content := []byte("fake mp3 payload")

	location, err := c.Upload(ctx, uuid.NewString(), "clip.mp3", bytes.NewReader(content))
	require.NoError(t, err)

	data, err := c.Download(ctx, location)
	require.NoError(t, err)
	assert.Equal(t, content, data)

	require.NoError(t, c.Delete(ctx, location))
}

func TestAzureAudioConnector_Download_NotFound(t *testing.T) {
	c := newAzureConnector(t)

	_, err := c.Download(context.Background(), "nobody/missing.wav")
	assert.ErrorIs(t, err, sessions.ErrAudioFileNotFound)
}

func TestAzureAudioConnector_Delete_NotFound(t *testing.T) {
	c := newAzureConnector(t)

	err := c.Delete(context.Background(), "nobody/missing.wav")
	assert.ErrorIs(t, err, sessions.ErrAudioFileNotFound)
}
