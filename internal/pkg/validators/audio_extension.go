package validators

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/voice-training/voice-training-service/internal/pkg/config"
)

// AudioExtension returns the lower-cased extension of name without the dot.
func AudioExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// IsAllowedAudioFile reports whether name carries one of the allowed extensions.
// A nil or empty allowed list falls back to config.DefaultAllowedExtensions.
func IsAllowedAudioFile(name string, allowed []string) bool {
	if len(allowed) == 0 {
		allowed = config.DefaultAllowedExtensions
	}
	ext := AudioExtension(name)
	return ext != "" && slices.Contains(allowed, ext)
}
