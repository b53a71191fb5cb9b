package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

type localAudioConnector struct {
	baseDir string
	logger  logger.Logger
}

// NewLocalAudioConnector stores recordings below settings.UploadDir with owner-only permissions.
func NewLocalAudioConnector(settings *config.AudioConnectorSettings, logger logger.Logger) (sessions.AudioConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	baseDir, err := filepath.Abs(settings.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return &localAudioConnector{baseDir: baseDir, logger: logger}, nil
}

func (c *localAudioConnector) Upload(ctx context.Context, userID, fileName string, content io.Reader) (string, error) {
	location := ObjectName(userID, fileName, time.Now())
	target, err := c.resolve(location)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", fmt.Errorf("failed to create user dir: %w", err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}

	if _, err := io.Copy(f, &contextReader{ctx: ctx, r: content}); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("failed to close audio file: %w", err)
	}

	c.logger.Info("Stored recording", "location", location)
	return location, nil
}

func (c *localAudioConnector) Download(_ context.Context, location string) ([]byte, error) {
	target, err := c.resolve(location)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", location, sessions.ErrAudioFileNotFound)
		}
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}
	return data, nil
}

func (c *localAudioConnector) Delete(_ context.Context, location string) error {
	target, err := c.resolve(location)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", location, sessions.ErrAudioFileNotFound)
		}
		return fmt.Errorf("failed to delete audio file: %w", err)
	}

	c.logger.Info("Deleted recording", "location", location)
	return nil
}

// resolve maps a location to a path and refuses anything outside baseDir.
func (c *localAudioConnector) resolve(location string) (string, error) {
	target := filepath.Join(c.baseDir, filepath.FromSlash(location))
	rel, err := filepath.Rel(c.baseDir, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid storage location %q", location)
	}
	return target, nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
