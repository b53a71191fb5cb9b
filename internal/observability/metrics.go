// Package observability exposes the service's Prometheus metrics.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "voice_training"

var (
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by route, method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	uploadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "audio",
		Name:      "uploads_total",
		Help:      "Recordings stored successfully.",
	})
	uploadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "audio",
		Name:      "upload_processing_seconds",
		Help:      "Time spent transcribing, analyzing and storing one recording.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})
	transcriptionFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "transcription",
		Name:      "failures_total",
		Help:      "Transcriptions that failed and were stored as empty text.",
	})
	analysisFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analysis",
		Name:      "failures_total",
		Help:      "Analyses that produced no metrics, by reason.",
	}, []string{"reason"})
	pitchBands = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analysis",
		Name:      "pitch_band_total",
		Help:      "Analyzed recordings by pitch band.",
	}, []string{"band"})
)

func init() {
	prometheus.MustRegister(
		httpRequestDuration,
		uploadsTotal,
		uploadDuration,
		transcriptionFailures,
		analysisFailures,
		pitchBands,
	)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// RecordUpload counts a stored recording and its processing time.
func RecordUpload(elapsed time.Duration) {
	uploadsTotal.Inc()
	uploadDuration.Observe(elapsed.Seconds())
}

// RecordTranscriptionFailure counts a failed transcription.
func RecordTranscriptionFailure() {
	transcriptionFailures.Inc()
}

// RecordAnalysis counts the outcome of one analysis. reason is the error kind
// (e.g. "load_failed") or empty on success; band is empty when no pitch was found.
func RecordAnalysis(reason, band string) {
	if reason != "" {
		analysisFailures.WithLabelValues(reason).Inc()
		return
	}
	if band == "" {
		band = "unknown"
	}
	pitchBands.WithLabelValues(band).Inc()
}
