package connector

import (
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/voice-training/voice-training-service/internal/pkg/strutil"
)

// ObjectName builds the storage key <user>/<timestamp>_<uuid8>_<name> for a recording.
func ObjectName(userID, fileName string, now time.Time) string {
	user := strutil.SanitizeFileName(userID, "anonymous")
	name := strutil.SanitizeFileName(fileName, "audio")
	return path.Join(user, now.UTC().Format("20060102T150405Z")+"_"+uuid.NewString()[:8]+"_"+name)
}
