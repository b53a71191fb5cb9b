// Package httputil builds and describes multipart and audio HTTP payloads.
package httputil

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var audioContentTypes = map[string]string{
	"mp3":  "audio/mpeg",
	"mpga": "audio/mpeg",
	"mpeg": "audio/mpeg",
	"mp4":  "audio/mp4",
	"m4a":  "audio/mp4",
	"wav":  "audio/wav",
	"webm": "audio/webm",
}

// AudioContentType returns the MIME type for an audio file name.
func AudioContentType(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ct, ok := audioContentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// AttachmentDisposition returns a Content-Disposition header value for downloading name.
func AttachmentDisposition(name string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filepath.Base(name)})
}

// MultipartBody encodes one file part plus plain fields and returns the body with its content type.
func MultipartBody(fieldName, fileName string, content []byte, fields map[string]string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", k, err)
		}
	}

	if fileName != "" {
		part, err := writer.CreateFormFile(fieldName, fileName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(content); err != nil {
			return nil, "", fmt.Errorf("failed to write file content: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

// CreateForm parses a multipart body built by MultipartBody back into a form.
// FileHeader.Size is set from the content, as ReadForm leaves it zero for in-memory parts.
func CreateForm(fieldName, fileName string, content []byte, fields map[string]string) (*multipart.Form, error) {
	body, contentType, err := MultipartBody(fieldName, fileName, content, fields)
	if err != nil {
		return nil, err
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content type: %w", err)
	}

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	if err != nil {
		return nil, fmt.Errorf("failed to read form: %w", err)
	}

	for _, fh := range form.File[fieldName] {
		fh.Size = int64(len(content))
	}
	return form, nil
}
