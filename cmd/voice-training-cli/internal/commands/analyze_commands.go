package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	v1 "github.com/voice-training/voice-training-service/internal/api/rest/v1"
	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
	"github.com/voice-training/voice-training-service/internal/infrastructure/analysis"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// AnalyzeCommandHandler computes acoustic metrics for local recordings.
type AnalyzeCommandHandler struct {
	logger logger.Logger
}

// NewAnalyzeCommandHandler initializes an AnalyzeCommandHandler.
func NewAnalyzeCommandHandler() (*AnalyzeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &AnalyzeCommandHandler{logger: loggerInstance}, nil
}

// AnalyzeCmd prints pitch, loudness and brightness metrics of the file in args[0].
func (h *AnalyzeCommandHandler) AnalyzeCmd(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	analyzer, err := analysis.NewAnalyzer(&cfg.Analysis, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	metrics := analyzer.Analyze(cmd.Context(), args[0])

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("invalid json flag: %w", err)
	}
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v1.NewMetricsResponse(metrics))
	}

	fmt.Fprint(cmd.OutOrStdout(), metricsTable(metrics))
	return nil
}

func metricsTable(m *acoustics.Metrics) string {
	rows := [][]string{
		{"f0_mean (Hz)", formatFloat(m.F0Mean)},
		{"f0_median (Hz)", formatFloat(m.F0Median)},
		{"f0_min (Hz)", formatFloat(m.F0Min)},
		{"f0_max (Hz)", formatFloat(m.F0Max)},
		{"f0_range (Hz)", formatFloat(m.F0Range)},
		{"f0_std (Hz)", formatFloat(m.F0Std)},
		{"pitch_band", formatString(m.PitchBand)},
		{"rms_mean", formatFloat(m.RMSMean)},
		{"spectral_centroid_mean (Hz)", formatFloat(m.SpectralCentroidMean)},
		{"analysis_error", formatString(m.AnalysisError)},
	}
	return renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}

// InitAnalyzeCommands registers the analyze command.
func InitAnalyzeCommands(rootCmd *cobra.Command) {
	var handler *AnalyzeCommandHandler

	var analyzeCmd = &cobra.Command{
		Use:   "analyze <audio-file>",
		Short: "Compute pitch, RMS and spectral centroid of a recording",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(*cobra.Command, []string) error {
			var err error
			handler, err = NewAnalyzeCommandHandler()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.AnalyzeCmd(cmd, args)
		},
	}
	analyzeCmd.Flags().Bool("json", false, "Print metrics as JSON")
	rootCmd.AddCommand(analyzeCmd)
}
