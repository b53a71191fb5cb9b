package acoustics

import (
	"context"
	"fmt"
)

// Pitch bands derived from the mean fundamental frequency.
const (
	PitchBandLower    = "lower"
	PitchBandNeutral  = "neutral"
	PitchBandFeminine = "feminine"
	PitchBandHigh     = "high"
	PitchBandUnknown  = "unknown"
)

// Band edges in Hz.
const (
	NeutralBandLow  = 155.0
	NeutralBandHigh = 185.0
	FeminineBandTop = 300.0
)

// Analysis error reasons.
const (
	ErrReasonEmptyAudio     = "empty_audio"
	ErrReasonLoadFailed     = "load_failed"
	ErrReasonAnalysisFailed = "analysis_failed"
)

// Metrics holds the acoustic measurements of one recording.
// Every measurement is nil when it could not be computed.
type Metrics struct {
	ID                   uint
	SessionID            uint
	F0Mean               *float64
	F0Median             *float64
	F0Min                *float64
	F0Max                *float64
	F0Range              *float64
	F0Std                *float64
	PitchBand            *string
	RMSMean              *float64
	SpectralCentroidMean *float64
	AnalysisError        *string
}

// EmptyMetrics returns metrics with every measurement unset. A non-empty reason is
// recorded as the analysis error.
func EmptyMetrics(reason string) *Metrics {
	m := &Metrics{}
	if reason != "" {
		m.AnalysisError = &reason
	}
	return m
}

// FailureReason formats an analysis error as "<kind>: <detail>".
func FailureReason(kind string, err error) string {
	if err == nil {
		return kind
	}
	return fmt.Sprintf("%s: %v", kind, err)
}

// ClassifyPitchBand maps a mean F0 in Hz to a pitch band.
func ClassifyPitchBand(f0Mean *float64) string {
	if f0Mean == nil {
		return PitchBandUnknown
	}
	f0 := *f0Mean
	switch {
	case f0 < NeutralBandLow:
		return PitchBandLower
	case f0 <= NeutralBandHigh:
		return PitchBandNeutral
	case f0 <= FeminineBandTop:
		return PitchBandFeminine
	default:
		return PitchBandHigh
	}
}

// Analyzer computes metrics for an audio file on disk. It never fails: problems are
// reported through Metrics.AnalysisError.
type Analyzer interface {
	Analyze(ctx context.Context, audioPath string) *Metrics
}
