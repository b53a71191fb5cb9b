//go:build unit
// +build unit

package transcription

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/testutil"
)

func writeAudio(t *testing.T) string {
	t.Helper()
	return testutil.WriteTestFile(t, t.TempDir(), "take.wav", []byte("RIFF fake"))
}

func TestHTTPTranscriber_Transcribe(t *testing.T) {
	var gotAuth, gotModel, gotFormat, gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")
		gotFormat = r.FormValue("response_format")
		if _, fh, err := r.FormFile("file"); assert.NoError(t, err) {
			gotFile = fh.Filename
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"text":     " hello there ",
			"language": "en",
			"segments": []map[string]any{{"start": 0.0, "end": 1.2, "text": "hello there"}},
		})
	}))
	defer srv.Close()

	tr, err := NewTranscriber(&config.TranscriptionSettings{
		Provider: config.TranscriptionProviderHTTP,
		Model:    "whisper-1",
		BaseURL:  srv.URL,
		APIKey:   "secret",
		Timeout:  5 * time.Second,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	out, err := tr.Transcribe(context.Background(), writeAudio(t))
	require.NoError(t, err)
	assert.Equal(t, "hello there", out.Text)
	assert.Equal(t, "en", out.Language)
	require.Len(t, out.Segments, 1)
	assert.InDelta(t, 1.2, out.Segments[0].End, 1e-9)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "whisper-1", gotModel)
	assert.Equal(t, "verbose_json", gotFormat)
	assert.Equal(t, "take.wav", gotFile)
}

func TestHTTPTranscriber_BaseURLWithVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"text":"ok"}`))
	}))
	defer srv.Close()

	tr, err := NewHTTPTranscriber(&config.TranscriptionSettings{
		Provider: config.TranscriptionProviderHTTP,
		Model:    "base",
		BaseURL:  srv.URL + "/v1/",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	out, err := tr.Transcribe(context.Background(), writeAudio(t))
	require.NoError(t, err)
	assert.Equal(t, "ok", out.PlainText())
}

func TestHTTPTranscriber_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	tr, err := NewHTTPTranscriber(&config.TranscriptionSettings{
		Provider: config.TranscriptionProviderHTTP,
		Model:    "base",
		BaseURL:  srv.URL,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), writeAudio(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestHTTPTranscriber_MissingFile(t *testing.T) {
	tr, err := NewHTTPTranscriber(&config.TranscriptionSettings{
		Provider: config.TranscriptionProviderHTTP,
		Model:    "base",
		BaseURL:  "http://127.0.0.1:1",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), "/does/not/exist.wav")
	assert.Error(t, err)
}

func TestCLITranscriber_ReadsJSONOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}

	script := filepath.Join(t.TempDir(), "fake-whisper")
	body := `#!/bin/sh
audio="$1"; shift
while [ $# -gt 0 ]; do
  case "$1" in
    --output_dir) out="$2"; shift 2 ;;
    *) shift ;;
  esac
done
name=$(basename "$audio"); name="${name%.*}"
printf '{"text":" from cli ","language":"de","segments":[]}' > "$out/$name.json"
`
	require.NoError(t, os.WriteFile(script, []byte(body), 0o700))

	tr, err := NewTranscriber(&config.TranscriptionSettings{
		Provider: config.TranscriptionProviderCLI,
		Model:    "tiny",
		Binary:   script,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	out, err := tr.Transcribe(context.Background(), writeAudio(t))
	require.NoError(t, err)
	assert.Equal(t, "from cli", out.Text)
	assert.Equal(t, "de", out.Language)
}

func TestCLITranscriber_BinaryMissing(t *testing.T) {
	tr, err := NewCLITranscriber(&config.TranscriptionSettings{
		Provider: config.TranscriptionProviderCLI,
		Model:    "tiny",
		Binary:   filepath.Join(t.TempDir(), "no-such-whisper"),
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), writeAudio(t))
	assert.Error(t, err)
}

func TestNoopTranscriber(t *testing.T) {
	tr, err := NewTranscriber(&config.TranscriptionSettings{Provider: config.TranscriptionProviderNone}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	out, err := tr.Transcribe(context.Background(), "ignored.wav")
	require.NoError(t, err)
	assert.Empty(t, out.PlainText())
}

func TestNewTranscriber_Invalid(t *testing.T) {
	_, err := NewTranscriber(&config.TranscriptionSettings{Provider: "cloud"}, testutil.SetupTestLogger(t))
	assert.Error(t, err)

	_, err = NewTranscriber(&config.TranscriptionSettings{Provider: config.TranscriptionProviderHTTP, Model: "m"}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestHTTPTranscriber_SendsLanguage(t *testing.T) {
	var gotLanguage, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			gotLanguage = r.FormValue("language")
			if f, _, err := r.FormFile("file"); assert.NoError(t, err) {
				b := make([]byte, 64)
				n, _ := f.Read(b)
				gotContent = string(b[:n])
			}
		}
		_, _ = w.Write([]byte(`{"text":"hallo","language":"de"}`))
	}))
	defer srv.Close()

	tr, err := NewHTTPTranscriber(&config.TranscriptionSettings{
		Provider: config.TranscriptionProviderHTTP,
		Model:    "base",
		BaseURL:  srv.URL,
		Language: "de",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), writeAudio(t))
	require.NoError(t, err)
	assert.Equal(t, "de", gotLanguage)
	assert.Equal(t, "RIFF fake", gotContent)
}

func TestNewTranscriber_WhisperCppRequiresModelPath(t *testing.T) {
	_, err := NewTranscriber(&config.TranscriptionSettings{
		Provider: config.TranscriptionProviderWhisperCpp,
		Model:    "base",
	}, testutil.SetupTestLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ModelPath")
}

func TestWhisperSegmentConversion(t *testing.T) {
	seg := newSegment(1500*time.Millisecond, 3250*time.Millisecond, " hello there ")
	assert.Equal(t, 1.5, seg.Start)
	assert.Equal(t, 3.25, seg.End)
	assert.Equal(t, "hello there", seg.Text)

	assert.Equal(t, "Hello there. How are you?", segmentText([]string{" Hello there.", " How are you?"}))
	assert.Empty(t, segmentText(nil))
}

func TestToFloat32(t *testing.T) {
	out := toFloat32([]float64{0, 0.5, -1})
	assert.Equal(t, []float32{0, 0.5, -1}, out)
	assert.Empty(t, toFloat32(nil))
}
