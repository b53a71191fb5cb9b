//go:build unit
// +build unit

package analysis

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voice-training/voice-training-service/internal/domain/acoustics"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/testutil"
)

const testRate = 16000

func sine(freq, seconds float64) []float64 {
	ints := testutil.SineSamples(freq, testRate, seconds, 0.5)
	out := make([]float64, len(ints))
	for i, v := range ints {
		out[i] = float64(v) / 32768
	}
	return out
}

func defaultSettings() *config.AnalysisSettings {
	return &config.AnalysisSettings{
		FFmpegBinary: filepath.Join(os.TempDir(), "no-such-ffmpeg"),
		FMin:         80,
		FMax:         400,
		FrameLength:  2048,
		HopLength:    512,
	}
}

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(defaultSettings(), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return a
}

func TestYIN_SineTone(t *testing.T) {
	for _, freq := range []float64{110, 220, 330} {
		f0, err := YIN(sine(freq, 1), testRate, YINParams{FMin: 80, FMax: 400, FrameLength: 2048, HopLength: 512})
		require.NoError(t, err)
		require.NotEmpty(t, f0)
		assert.InDelta(t, freq, median(finite(f0)), 2, "tone %v Hz", freq)
	}
}

func TestYIN_FrameCount(t *testing.T) {
	f0, err := YIN(sine(200, 1), testRate, YINParams{FMin: 80, FMax: 400, FrameLength: 2048, HopLength: 512})
	require.NoError(t, err)
	assert.Len(t, f0, 1+testRate/512)
}

func TestYIN_InvalidParams(t *testing.T) {
	_, err := YIN(sine(200, 0.1), testRate, YINParams{FMin: 400, FMax: 80, FrameLength: 2048, HopLength: 512})
	assert.Error(t, err)

	_, err = YIN(sine(200, 0.1), testRate, YINParams{FMin: 80, FMax: 400, FrameLength: 64, HopLength: 16})
	assert.Error(t, err)
}

func TestBestTrough(t *testing.T) {
	assert.Equal(t, 2, bestTrough([]float64{0.9, 0.5, 0.05, 0.3, 0.01, 0.4}))
	assert.Equal(t, 1, bestTrough([]float64{0.9, 0.5, 0.7, 0.6}))
	assert.Equal(t, 0, bestTrough([]float64{0, 0, 0}))
}

func TestParabolicShifts(t *testing.T) {
	x := []float64{4, 1, 0, 1, 4}
	shifts := make([]float64, len(x))
	parabolicShifts(x, shifts)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, shifts)

	x = []float64{2, 0, 1}
	shifts = make([]float64, len(x))
	parabolicShifts(x, shifts)
	assert.InDelta(t, 1.0/6, shifts[1], 1e-12)
}

func TestFrameRMS(t *testing.T) {
	y := make([]float64, 8192)
	for i := range y {
		y[i] = 0.5
	}
	rms := FrameRMS(y, 2048, 512)
	require.Len(t, rms, 1+8192/512)
	assert.InDelta(t, 0.5, rms[len(rms)/2], 1e-12)
	assert.Less(t, rms[0], 0.5)
}

func TestSpectralCentroid_Tone(t *testing.T) {
	c := SpectralCentroid(sine(1000, 1), testRate, 2048, 512)
	require.NotEmpty(t, c)
	assert.InDelta(t, 1000, c[len(c)/2], 25)
}

func TestSpectralCentroid_Silence(t *testing.T) {
	c := SpectralCentroid(make([]float64, 4096), testRate, 2048, 512)
	for _, v := range c {
		assert.Zero(t, v)
	}
}

func TestSummarise(t *testing.T) {
	_, ok := summarise(nil)
	assert.False(t, ok)

	s, ok := summarise([]float64{4, 1, 3, 2})
	require.True(t, ok)
	assert.InDelta(t, 2.5, s.mean, 1e-12)
	assert.InDelta(t, 2.5, s.median, 1e-12)
	assert.Equal(t, 1.0, s.min)
	assert.Equal(t, 4.0, s.max)
	assert.Equal(t, 3.0, s.rng)
	assert.InDelta(t, 1.118033988749895, s.std, 1e-12)

	assert.Equal(t, 3.0, median([]float64{5, 3, 1}))
}

func TestFinite(t *testing.T) {
	assert.Equal(t, []float64{1, 2}, finite([]float64{1, math.NaN(), math.Inf(1), 2}))
}

func TestDownmix(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: testRate},
		Data:   []int{16384, -16384, 32767, 32767},
	}
	out := downmix(buf, 16)
	require.Len(t, out, 2)
	assert.InDelta(t, 0, out[0], 1e-9)
	assert.InDelta(t, 32767.0/32768, out[1], 1e-9)

	buf8 := &audio.IntBuffer{Format: &audio.Format{NumChannels: 1}, Data: []int{128, 255, 0}}
	assert.Equal(t, []float64{0, 127.0 / 128, -1}, downmix(buf8, 8))
}

func TestAnalyzer_FeminineTone(t *testing.T) {
	path := testutil.WriteSineWAV(t, t.TempDir(), 220, testRate, 2)

	m := newTestAnalyzer(t).Analyze(context.Background(), path)
	require.Nil(t, m.AnalysisError)
	require.NotNil(t, m.F0Mean)
	assert.InDelta(t, 220, *m.F0Mean, 30)
	assert.InDelta(t, 220, *m.F0Median, 2)
	assert.Equal(t, acoustics.PitchBandFeminine, *m.PitchBand)
	assert.InDelta(t, *m.F0Max-*m.F0Min, *m.F0Range, 1e-9)
	require.NotNil(t, m.RMSMean)
	assert.Greater(t, *m.RMSMean, 0.2)
	require.NotNil(t, m.SpectralCentroidMean)
	assert.Greater(t, *m.SpectralCentroidMean, 0.0)
}

func TestAnalyzer_LowTone(t *testing.T) {
	path := testutil.WriteSineWAV(t, t.TempDir(), 120, testRate, 2)

	m := newTestAnalyzer(t).Analyze(context.Background(), path)
	require.Nil(t, m.AnalysisError)
	assert.Equal(t, acoustics.PitchBandLower, *m.PitchBand)
}

func TestAnalyzer_StereoFile(t *testing.T) {
	mono := testutil.SineSamples(220, testRate, 1, 0.5)
	stereo := make([]int, 0, 2*len(mono))
	for _, v := range mono {
		stereo = append(stereo, v, v)
	}
	path := testutil.WriteWAV(t, t.TempDir(), "stereo.wav", testRate, 2, stereo)

	m := newTestAnalyzer(t).Analyze(context.Background(), path)
	require.Nil(t, m.AnalysisError)
	assert.InDelta(t, 220, *m.F0Median, 2)
}

func TestAnalyzer_LoadFailed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o600))

	m := newTestAnalyzer(t).Analyze(context.Background(), path)
	require.NotNil(t, m.AnalysisError)
	assert.Equal(t, "load_failed: ffmpeg_failed", *m.AnalysisError)
	assert.NotContains(t, *m.AnalysisError, dir)
	assert.NotContains(t, *m.AnalysisError, "/")
	assert.Nil(t, m.F0Mean)
	assert.Nil(t, m.PitchBand)
	assert.Nil(t, m.RMSMean)
}

func TestAnalyzer_UnsupportedWebm(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteTestFile(t, dir, "take.webm", []byte{0x1a, 0x45, 0xdf, 0xa3, 0x00})

	m := newTestAnalyzer(t).Analyze(context.Background(), path)
	require.NotNil(t, m.AnalysisError)
	assert.Equal(t, acoustics.ErrReasonLoadFailed+": "+ErrFFmpegFailed.Error(), *m.AnalysisError)
	assert.NotContains(t, *m.AnalysisError, dir)
}

func TestAnalyzer_MissingFile(t *testing.T) {
	m := newTestAnalyzer(t).Analyze(context.Background(), filepath.Join(t.TempDir(), "gone.wav"))
	require.NotNil(t, m.AnalysisError)
	assert.Equal(t, "load_failed: unreadable", *m.AnalysisError)
}

func TestAnalyzer_EmptyWAV(t *testing.T) {
	path := testutil.WriteWAV(t, t.TempDir(), "empty.wav", testRate, 1, nil)

	m := newTestAnalyzer(t).Analyze(context.Background(), path)
	require.NotNil(t, m.AnalysisError)
	assert.Equal(t, acoustics.ErrReasonEmptyAudio, *m.AnalysisError)
	assert.Nil(t, m.F0Mean)
	assert.Nil(t, m.RMSMean)
	assert.Nil(t, m.SpectralCentroidMean)
}

func TestAnalyzer_PitchFailure(t *testing.T) {
	path := testutil.WriteSineWAV(t, t.TempDir(), 220, testRate, 1)

	// inverted bounds skip NewAnalyzer validation and fail inside the pitch tracker
	s := *defaultSettings()
	s.FMin, s.FMax = 400, 80
	a := &Analyzer{decoder: NewDecoder(s.FFmpegBinary), settings: s, logger: testutil.SetupTestLogger(t)}

	m := a.Analyze(context.Background(), path)
	require.NotNil(t, m.AnalysisError)
	assert.Equal(t, "analysis_failed: pitch_failed", *m.AnalysisError)
	assert.Nil(t, m.F0Mean)
	assert.Nil(t, m.PitchBand)
}

func TestAnalyzer_ComputeRecoversPanic(t *testing.T) {
	a := &Analyzer{settings: *defaultSettings(), logger: testutil.SetupTestLogger(t)}
	a.settings.HopLength = 0

	// YIN rejects the zero hop before framing, so drive the frame helpers directly
	_, err := a.compute(sine(220, 0.5), testRate)
	require.ErrorIs(t, err, ErrPitchFailed)

	assert.NotPanics(t, func() {
		err = guard(func() error {
			_ = frameCount(4096, 2048, a.settings.HopLength)
			return nil
		})
	})
	assert.ErrorIs(t, err, ErrAnalysisPanic)
	assert.Equal(t, "panic", category(err, ErrPitchFailed, ErrAnalysisPanic).Error())
}

func TestDecoder_LoadAt(t *testing.T) {
	d := NewDecoder(filepath.Join(t.TempDir(), "no-such-ffmpeg"))

	native := testutil.WriteSineWAV(t, t.TempDir(), 220, 16000, 0.5)
	samples, err := d.LoadAt(context.Background(), native, 16000)
	require.NoError(t, err)
	assert.Len(t, samples, 8000)

	// a different rate needs ffmpeg, which is missing here
	low := testutil.WriteSineWAV(t, t.TempDir(), 220, 8000, 0.5)
	_, err = d.LoadAt(context.Background(), low, 16000)
	assert.ErrorIs(t, err, ErrFFmpegFailed)

	empty := testutil.WriteWAV(t, t.TempDir(), "empty.wav", 16000, 1, nil)
	_, err = d.LoadAt(context.Background(), empty, 16000)
	assert.ErrorIs(t, err, ErrEmptyAudio)
}

func TestNewAnalyzer_InvalidSettings(t *testing.T) {
	s := defaultSettings()
	s.FMax = 10
	_, err := NewAnalyzer(s, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
