package models

import (
	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
)

// MetricsModel is the GORM database model for acoustic metrics, one row per session
type MetricsModel struct {
	ID                   uint     `gorm:"primaryKey;autoIncrement"`
	SessionID            uint     `gorm:"not null;uniqueIndex"`
	F0Mean               *float64 `gorm:"column:f0_mean"`
	F0Median             *float64 `gorm:"column:f0_median"`
	F0Min                *float64 `gorm:"column:f0_min"`
	F0Max                *float64 `gorm:"column:f0_max"`
	F0Range              *float64 `gorm:"column:f0_range"`
	F0Std                *float64 `gorm:"column:f0_std"`
	PitchBand            *string  `gorm:"column:pitch_band;type:varchar(32)"`
	RMSMean              *float64 `gorm:"column:rms_mean"`
	SpectralCentroidMean *float64 `gorm:"column:spectral_centroid_mean"`
	AnalysisError        *string  `gorm:"column:analysis_error;type:text"`
}

// TableName specifies the table name for GORM
func (MetricsModel) TableName() string {
	return "metrics"
}

// ToDomain converts GORM model to domain entity
func (m *MetricsModel) ToDomain() *acoustics.Metrics {
	return &acoustics.Metrics{
		ID:                   m.ID,
		SessionID:            m.SessionID,
		F0Mean:               m.F0Mean,
		F0Median:             m.F0Median,
		F0Min:                m.F0Min,
		F0Max:                m.F0Max,
		F0Range:              m.F0Range,
		F0Std:                m.F0Std,
		PitchBand:            m.PitchBand,
		RMSMean:              m.RMSMean,
		SpectralCentroidMean: m.SpectralCentroidMean,
		AnalysisError:        m.AnalysisError,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MetricsModel) FromDomain(a *acoustics.Metrics) {
	m.ID = a.ID
	m.SessionID = a.SessionID
	m.F0Mean = a.F0Mean
	m.F0Median = a.F0Median
	m.F0Min = a.F0Min
	m.F0Max = a.F0Max
	m.F0Range = a.F0Range
	m.F0Std = a.F0Std
	m.PitchBand = a.PitchBand
	m.RMSMean = a.RMSMean
	m.SpectralCentroidMean = a.SpectralCentroidMean
	m.AnalysisError = a.AnalysisError
}
