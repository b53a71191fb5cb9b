package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/voice-training/voice-training-service/internal/infrastructure/transcription"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// TranscribeCommandHandler runs the configured speech-to-text engine on local files.
type TranscribeCommandHandler struct {
	logger logger.Logger
}

// NewTranscribeCommandHandler initializes a TranscribeCommandHandler.
func NewTranscribeCommandHandler() (*TranscribeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &TranscribeCommandHandler{logger: loggerInstance}, nil
}

// TranscribeCmd prints the transcript of the file in args[0].
func (h *TranscribeCommandHandler) TranscribeCmd(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("provider") {
		cfg.Transcription.Provider, _ = cmd.Flags().GetString("provider")
	}
	if cmd.Flags().Changed("language") {
		cfg.Transcription.Language, _ = cmd.Flags().GetString("language")
	}
	if cmd.Flags().Changed("model-path") {
		cfg.Transcription.ModelPath, _ = cmd.Flags().GetString("model-path")
	}

	transcriber, err := transcription.NewTranscriber(&cfg.Transcription, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}
	if closer, ok := transcriber.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	transcript, err := transcriber.Transcribe(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	withSegments, err := cmd.Flags().GetBool("segments")
	if err != nil {
		return fmt.Errorf("invalid segments flag: %w", err)
	}
	if !withSegments {
		fmt.Fprintln(cmd.OutOrStdout(), transcript.PlainText())
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(transcript)
}

// InitTranscribeCommands registers the transcribe command.
func InitTranscribeCommands(rootCmd *cobra.Command) {
	var handler *TranscribeCommandHandler

	var transcribeCmd = &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe a recording with the configured speech-to-text engine",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(*cobra.Command, []string) error {
			var err error
			handler, err = NewTranscribeCommandHandler()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.TranscribeCmd(cmd, args)
		},
	}
	transcribeCmd.Flags().String("provider", "", "Override the transcription provider (whispercpp, http, cli, none)")
	transcribeCmd.Flags().String("language", "", "Language hint passed to the engine")
	transcribeCmd.Flags().String("model-path", "", "Override the ggml model file of the whispercpp provider")
	transcribeCmd.Flags().Bool("segments", false, "Print the full transcript with segments as JSON")
	rootCmd.AddCommand(transcribeCmd)
}
