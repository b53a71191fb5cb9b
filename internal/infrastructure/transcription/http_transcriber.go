package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/voice-training/voice-training-service/internal/domain/transcripts"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/httputil"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

const transcriptionsPath = "/audio/transcriptions"

type httpTranscriber struct {
	endpoint string
	apiKey   string
	model    string
	language string
	client   *http.Client
	logger   logger.Logger
}

// NewHTTPTranscriber talks to an OpenAI-compatible transcription endpoint.
// BaseURL may name the server root or its /v1 prefix.
func NewHTTPTranscriber(settings *config.TranscriptionSettings, logger logger.Logger) (transcripts.Transcriber, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	base := strings.TrimRight(settings.BaseURL, "/")
	if !strings.HasSuffix(base, "/v1") {
		base += "/v1"
	}

	return &httpTranscriber{
		endpoint: base + transcriptionsPath,
		apiKey:   settings.APIKey,
		model:    settings.Model,
		language: settings.Language,
		client:   &http.Client{Timeout: settings.Timeout},
		logger:   logger,
	}, nil
}

type verboseResponse struct {
	Text     string                `json:"text"`
	Language string                `json:"language"`
	Segments []transcripts.Segment `json:"segments"`
}

func (t *httpTranscriber) Transcribe(ctx context.Context, audioPath string) (*transcripts.Transcript, error) {
	body, contentType, err := t.buildForm(audioPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build transcription request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("transcription http %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var parsed verboseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode transcription response: %w", err)
	}

	t.logger.Debug("Transcribed recording", "path", audioPath, "segments", len(parsed.Segments))
	return &transcripts.Transcript{
		Text:     strings.TrimSpace(parsed.Text),
		Language: parsed.Language,
		Segments: parsed.Segments,
	}, nil
}

func (t *httpTranscriber) buildForm(audioPath string) (*bytes.Buffer, string, error) {
	content, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open audio: %w", err)
	}

	fields := map[string]string{
		"model":           t.model,
		"response_format": "verbose_json",
	}
	if t.language != "" {
		fields["language"] = t.language
	}
	return httputil.MultipartBody("file", filepath.Base(audioPath), content, fields)
}
