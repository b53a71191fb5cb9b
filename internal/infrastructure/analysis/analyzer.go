package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// Compute failure categories.
var (
	ErrPitchFailed   = errors.New("pitch_failed")
	ErrAnalysisPanic = errors.New("panic")
)

// Analyzer implements acoustics.Analyzer.
type Analyzer struct {
	decoder  *Decoder
	settings config.AnalysisSettings
	logger   logger.Logger
}

// NewAnalyzer validates settings and returns an Analyzer.
func NewAnalyzer(settings *config.AnalysisSettings, logger logger.Logger) (*Analyzer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		decoder:  NewDecoder(settings.FFmpegBinary),
		settings: *settings,
		logger:   logger,
	}, nil
}

// Analyze decodes audioPath and computes its metrics. Failures are reported in
// Metrics.AnalysisError as "<kind>: <category>" with all measurements unset; the
// full error is only logged.
func (a *Analyzer) Analyze(ctx context.Context, audioPath string) *acoustics.Metrics {
	samples, sr, err := a.decoder.Load(ctx, audioPath)
	if err != nil {
		if errors.Is(err, ErrEmptyAudio) {
			return acoustics.EmptyMetrics(acoustics.ErrReasonEmptyAudio)
		}
		a.logger.Warn("Failed to load audio for analysis", "path", audioPath, "error", err)
		return acoustics.EmptyMetrics(acoustics.FailureReason(acoustics.ErrReasonLoadFailed,
			category(err, ErrUnreadable, ErrInvalidWAV, ErrFFmpegFailed)))
	}

	metrics, err := a.compute(samples, sr)
	if err != nil {
		a.logger.Warn("Audio analysis failed", "path", audioPath, "error", err)
		return acoustics.EmptyMetrics(acoustics.FailureReason(acoustics.ErrReasonAnalysisFailed,
			category(err, ErrPitchFailed, ErrAnalysisPanic)))
	}
	return metrics
}

// category returns the first of known that err wraps, or nil.
func category(err error, known ...error) error {
	for _, k := range known {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

func (a *Analyzer) compute(samples []float64, sr int) (*acoustics.Metrics, error) {
	var m *acoustics.Metrics
	err := guard(func() error {
		var err error
		m, err = a.measure(samples, sr)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// guard runs fn and turns a panic into ErrAnalysisPanic.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrAnalysisPanic, r)
		}
	}()
	return fn()
}

func (a *Analyzer) measure(samples []float64, sr int) (*acoustics.Metrics, error) {
	f0, err := YIN(samples, sr, YINParams{
		FMin:        a.settings.FMin,
		FMax:        a.settings.FMax,
		FrameLength: a.settings.FrameLength,
		HopLength:   a.settings.HopLength,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPitchFailed, err)
	}

	m := acoustics.EmptyMetrics("")
	if s, ok := summarise(finite(f0)); ok {
		band := acoustics.ClassifyPitchBand(&s.mean)
		m.F0Mean, m.F0Median = &s.mean, &s.median
		m.F0Min, m.F0Max = &s.min, &s.max
		m.F0Range, m.F0Std = &s.rng, &s.std
		m.PitchBand = &band
	}

	m.RMSMean = meanOrNil(FrameRMS(samples, a.settings.FrameLength, a.settings.HopLength))
	m.SpectralCentroidMean = meanOrNil(SpectralCentroid(samples, sr, a.settings.FrameLength, a.settings.HopLength))
	return m, nil
}

var _ acoustics.Analyzer = (*Analyzer)(nil)
