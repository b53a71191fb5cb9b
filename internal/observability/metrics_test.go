//go:build unit
// +build unit

package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordUpload(t *testing.T) {
	before := testutil.ToFloat64(uploadsTotal)
	RecordUpload(2 * time.Second)
	assert.Equal(t, before+1, testutil.ToFloat64(uploadsTotal))
}

func TestRecordTranscriptionFailure(t *testing.T) {
	before := testutil.ToFloat64(transcriptionFailures)
	RecordTranscriptionFailure()
	assert.Equal(t, before+1, testutil.ToFloat64(transcriptionFailures))
}

func TestRecordAnalysis(t *testing.T) {
	failed := analysisFailures.WithLabelValues("load_failed")
	feminine := pitchBands.WithLabelValues("feminine")
	unknown := pitchBands.WithLabelValues("unknown")
	f0, b0, u0 := testutil.ToFloat64(failed), testutil.ToFloat64(feminine), testutil.ToFloat64(unknown)

	RecordAnalysis("load_failed", "")
	RecordAnalysis("", "feminine")
	RecordAnalysis("", "")

	assert.Equal(t, f0+1, testutil.ToFloat64(failed))
	assert.Equal(t, b0+1, testutil.ToFloat64(feminine))
	assert.Equal(t, u0+1, testutil.ToFloat64(unknown))
}

func TestObserveHTTPRequest(t *testing.T) {
	ObserveHTTPRequest("/api/modules", "GET", 200, 10*time.Millisecond)
	ObserveHTTPRequest("", "GET", 404, time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(httpRequestDuration))
}
