package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Audio storage providers
const (
	LocalStorageProvider = "local"
	AzureCloudProvider   = "azure"
)

// AudioConnectorSettings selects where uploaded recordings are kept.
type AudioConnectorSettings struct {
	CloudProvider    string `mapstructure:"cloud_provider" validate:"required,oneof=local azure"`
	UploadDir        string `mapstructure:"upload_dir" validate:"required_if=CloudProvider local"`
	ConnectionString string `mapstructure:"connection_string" validate:"required_if=CloudProvider azure"`
	ContainerName    string `mapstructure:"container_name" validate:"required_if=CloudProvider azure"`
}

// Validate checks that all fields in AudioConnectorSettings are valid
func (s *AudioConnectorSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for AudioConnectorSettings: %w", err)
	}
	return nil
}
