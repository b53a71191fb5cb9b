package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	v1 "github.com/voice-training/voice-training-service/internal/api/rest/v1"
	"github.com/voice-training/voice-training-service/internal/app"
	"github.com/voice-training/voice-training-service/internal/infrastructure/connector"
	"github.com/voice-training/voice-training-service/internal/infrastructure/persistence"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// UserCommandHandler works on stored user data.
type UserCommandHandler struct {
	logger logger.Logger
}

// NewUserCommandHandler initializes a UserCommandHandler.
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &UserCommandHandler{logger: loggerInstance}, nil
}

// ExportCmd writes the data export of user args[0] as JSON to stdout or --output.
func (h *UserCommandHandler) ExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			h.logger.Error("Failed to close database", "error", err)
		}
	}()

	userRepo, err := persistence.NewGormUserRepository(db, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}
	sessionRepo, err := persistence.NewGormAudioSessionRepository(db, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create audio session repository: %w", err)
	}
	postRepo, err := persistence.NewGormPostRepository(db, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create post repository: %w", err)
	}
	audioConnector, err := connector.NewAudioConnector(cmd.Context(), &cfg.AudioConnector, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create audio connector: %w", err)
	}

	service, err := app.NewUserService(userRepo, sessionRepo, postRepo, audioConnector, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}

	export, err := service.Export(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to export user %s: %w", args[0], err)
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v1.NewExportResponse(export)); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	if output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Export of %s written to %s\n", args[0], output)
	}
	return nil
}

// InitUserCommands registers the users command group.
func InitUserCommands(rootCmd *cobra.Command) {
	var handler *UserCommandHandler

	var usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Work with stored user data",
	}

	var exportCmd = &cobra.Command{
		Use:   "export <user-id>",
		Short: "Export everything stored about a user as JSON",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(*cobra.Command, []string) error {
			var err error
			handler, err = NewUserCommandHandler()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.ExportCmd(cmd, args)
		},
	}
	exportCmd.Flags().StringP("output", "o", "", "Write the export to this file instead of stdout")

	usersCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(usersCmd)
}
