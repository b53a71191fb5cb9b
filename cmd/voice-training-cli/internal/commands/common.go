package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/voice-training/voice-training-service/internal/infrastructure/persistence"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

const configFlag = "config"

// NewRootCommand builds the CLI with every command group registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "voice-training-cli",
		Short: "Voice training operations CLI tool",
		Long: `voice-training-cli analyzes and transcribes recordings locally and manages the
service database: seeding and listing training modules, exporting user data.

Configuration is read from --config, falling back to the CONFIG_PATH environment
variable. VOICE_* environment variables override file values.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(configFlag, os.Getenv("CONFIG_PATH"), "Path to the YAML configuration file")

	InitAnalyzeCommands(rootCmd)
	InitTranscribeCommands(rootCmd)
	InitModuleCommands(rootCmd)
	InitUserCommands(rootCmd)

	return rootCmd
}

// loadConfig reads the configuration named by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// setupLogger logs errors only, keeping stdout for command output.
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelError,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openDatabase connects and migrates the configured database.
func openDatabase(cfg *config.RestConfig) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}
