package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

// SineSamples returns a sine tone as 16-bit integers.
func SineSamples(freq float64, sampleRate int, seconds, amplitude float64) []int {
	n := int(float64(sampleRate) * seconds)
	out := make([]int, n)
	for i := range out {
		v := amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		out[i] = int(math.Round(v * math.MaxInt16))
	}
	return out
}

// WriteWAV writes interleaved 16-bit PCM data to dir/name and returns the path.
func WriteWAV(t *testing.T, dir, name string, sampleRate, channels int, data []int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

// WriteSineWAV writes a mono sine tone and returns the path.
func WriteSineWAV(t *testing.T, dir string, freq float64, sampleRate int, seconds float64) string {
	t.Helper()
	return WriteWAV(t, dir, "tone.wav", sampleRate, 1, SineSamples(freq, sampleRate, seconds, 0.5))
}
