package connector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

type azureAudioConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureAudioConnector connects to the storage account and ensures the container exists.
func NewAzureAudioConnector(ctx context.Context, settings *config.AudioConnectorSettings, logger logger.Logger) (sessions.AudioConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	opts := &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: 3, RetryDelay: time.Second},
		},
	}
	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create Azure container: %w", err)
	}

	logger.Info("Connected to Azure Blob Storage", "container", settings.ContainerName)
	return &azureAudioConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

func (c *azureAudioConnector) Upload(ctx context.Context, userID, fileName string, content io.Reader) (string, error) {
	location := ObjectName(userID, fileName, time.Now())

	if _, err := c.client.UploadStream(ctx, c.containerName, location, content, nil); err != nil {
		return "", fmt.Errorf("failed to upload blob '%s': %w", location, err)
	}

	c.logger.Info("Stored recording", "location", location)
	return location, nil
}

func (c *azureAudioConnector) Download(ctx context.Context, location string) ([]byte, error) {
	resp, err := c.client.DownloadStream(ctx, c.containerName, location, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s: %w", location, sessions.ErrAudioFileNotFound)
		}
		return nil, fmt.Errorf("failed to download blob '%s': %w", location, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read blob '%s': %w", location, err)
	}
	return buf.Bytes(), nil
}

func (c *azureAudioConnector) Delete(ctx context.Context, location string) error {
	if _, err := c.client.DeleteBlob(ctx, c.containerName, location, nil); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s: %w", location, sessions.ErrAudioFileNotFound)
		}
		return fmt.Errorf("failed to delete blob '%s': %w", location, err)
	}

	c.logger.Info("Deleted recording", "location", location)
	return nil
}

func isNotFound(err error) bool {
	if bloberror.HasCode(err, bloberror.BlobNotFound) {
		return true
	}
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}
