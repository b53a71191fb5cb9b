package connector

import (
	"context"
	"fmt"

	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// NewAudioConnector returns the connector selected by settings.CloudProvider.
func NewAudioConnector(ctx context.Context, settings *config.AudioConnectorSettings, logger logger.Logger) (sessions.AudioConnector, error) {
	switch settings.CloudProvider {
	case config.LocalStorageProvider:
		return NewLocalAudioConnector(settings, logger)
	case config.AzureCloudProvider:
		return NewAzureAudioConnector(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported audio storage provider: %s", settings.CloudProvider)
	}
}
