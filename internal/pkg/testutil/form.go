package testutil

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voice-training/voice-training-service/internal/pkg/httputil"
)

// AudioFileHeader returns a parsed upload part named "audio" holding content.
func AudioFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	form, err := httputil.CreateForm("audio", fileName, content, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["audio"], 1)
	return form.File["audio"][0]
}
