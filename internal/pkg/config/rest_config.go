package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. VOICE_DATABASE_DSN.
const EnvPrefix = "VOICE"

// RestConfig is the root configuration of the REST service.
type RestConfig struct {
	Port           string                 `mapstructure:"port" validate:"required,numeric"`
	Logger         LoggerSettings         `mapstructure:"logger"`
	Database       DatabaseSettings       `mapstructure:"database"`
	AudioConnector AudioConnectorSettings `mapstructure:"audio_connector"`
	Transcription  TranscriptionSettings  `mapstructure:"transcription"`
	Analysis       AnalysisSettings       `mapstructure:"analysis"`
	Upload         UploadSettings         `mapstructure:"upload"`
}

// Validate checks the root fields and every nested settings block.
func (c *RestConfig) Validate() error {
	if err := validator.New().StructPartial(c, "Port"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	return errors.Join(
		c.Logger.Validate(),
		c.Database.Validate(),
		c.AudioConnector.Validate(),
		c.Transcription.Validate(),
		c.Analysis.Validate(),
		c.Upload.Validate(),
	)
}

// InitializeRestConfig loads the YAML file at path, applies VOICE_* environment overrides
// and validates the result. An empty path loads defaults and environment only.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "data/voice_training.db")
	v.SetDefault("database.name", "")

	v.SetDefault("audio_connector.cloud_provider", LocalStorageProvider)
	v.SetDefault("audio_connector.upload_dir", "data/uploads")
	v.SetDefault("audio_connector.connection_string", "")
	v.SetDefault("audio_connector.container_name", "")

	v.SetDefault("transcription.provider", TranscriptionProviderNone)
	v.SetDefault("transcription.model", "base")
	v.SetDefault("transcription.model_path", "")
	v.SetDefault("transcription.ffmpeg_binary", "ffmpeg")
	v.SetDefault("transcription.base_url", "")
	v.SetDefault("transcription.api_key", "")
	v.SetDefault("transcription.binary", "whisper")
	v.SetDefault("transcription.language", "")
	v.SetDefault("transcription.timeout", 5*time.Minute)

	v.SetDefault("analysis.ffmpeg_binary", "ffmpeg")
	v.SetDefault("analysis.fmin", 80.0)
	v.SetDefault("analysis.fmax", 400.0)
	v.SetDefault("analysis.frame_length", 2048)
	v.SetDefault("analysis.hop_length", 512)

	v.SetDefault("upload.max_bytes", DefaultMaxUploadBytes)
	v.SetDefault("upload.allowed_extensions", DefaultAllowedExtensions)

	return v
}
