package analysis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Decode failure categories. Their text is stored as the analysis error reason,
// so it never carries paths or tool output.
var (
	ErrEmptyAudio   = errors.New("empty_audio")
	ErrUnreadable   = errors.New("unreadable")
	ErrInvalidWAV   = errors.New("invalid_wav")
	ErrFFmpegFailed = errors.New("ffmpeg_failed")
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
	defaultFFmpegBinary = "ffmpeg"
)

// Decoder turns an audio file into mono float samples.
type Decoder struct {
	ffmpeg string
}

// NewDecoder returns a Decoder that converts non-WAV input with the given ffmpeg binary.
func NewDecoder(ffmpegBinary string) *Decoder {
	if ffmpegBinary == "" {
		ffmpegBinary = defaultFFmpegBinary
	}
	return &Decoder{ffmpeg: ffmpegBinary}
}

// Load decodes path. PCM WAV is read directly; anything else goes through ffmpeg.
func (d *Decoder) Load(ctx context.Context, path string) ([]float64, int, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		samples, sr, err := decodeWAV(path)
		if err == nil {
			return samples, sr, nil
		}
		if errors.Is(err, ErrEmptyAudio) || errors.Is(err, ErrUnreadable) {
			return nil, 0, err
		}
	}

	converted, err := d.convert(ctx, path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = os.Remove(converted) }()

	return decodeWAV(converted)
}

// LoadAt decodes path to mono samples at sampleRate. A WAV already at that rate is
// read directly; anything else is resampled by ffmpeg.
func (d *Decoder) LoadAt(ctx context.Context, path string, sampleRate int) ([]float64, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		samples, sr, err := decodeWAV(path)
		if err == nil && sr == sampleRate {
			return samples, nil
		}
		if errors.Is(err, ErrEmptyAudio) || errors.Is(err, ErrUnreadable) {
			return nil, err
		}
	}

	converted, err := d.convert(ctx, path, "-ar", strconv.Itoa(sampleRate))
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.Remove(converted) }()

	samples, _, err := decodeWAV(converted)
	return samples, err
}

// convert writes a mono 16-bit WAV copy of path and returns its location.
// extra is inserted before the output options.
func (d *Decoder) convert(ctx context.Context, path string, extra ...string) (string, error) {
	out, err := os.CreateTemp("", "analysis-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create temp wav: %w", err)
	}
	outPath := out.Name()
	_ = out.Close()

	args := []string{"-nostdin", "-hide_banner", "-loglevel", "error", "-y", "-i", path, "-vn", "-ac", "1"}
	args = append(args, extra...)
	args = append(args, "-c:a", "pcm_s16le", "-f", "wav", outPath)

	cmd := exec.CommandContext(ctx, d.ffmpeg, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.Remove(outPath)
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			return "", fmt.Errorf("%w: %v", ErrFFmpegFailed, err)
		}
		return "", fmt.Errorf("%w: %v: %s", ErrFFmpegFailed, err, msg)
	}
	return outPath, nil
}

func decodeWAV(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: missing RIFF/WAVE header", ErrInvalidWAV)
	}
	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return nil, 0, fmt.Errorf("%w: unsupported encoding %d", ErrInvalidWAV, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
	}

	samples := downmix(buf, int(dec.BitDepth))
	if len(samples) == 0 {
		return nil, 0, ErrEmptyAudio
	}
	return samples, int(dec.SampleRate), nil
}

// downmix averages interleaved channels and scales integers to [-1, 1).
func downmix(buf *audio.IntBuffer, bitDepth int) []float64 {
	channels := 1
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		channels = buf.Format.NumChannels
	}

	offset, scale := 0.0, float64(int64(1)<<(bitDepth-1))
	if bitDepth == 8 {
		// 8-bit WAV is unsigned
		offset, scale = 128, 128
	}

	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := range out {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += (float64(buf.Data[i*channels+c]) - offset) / scale
		}
		out[i] = sum / float64(channels)
	}
	return out
}
