package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
	"github.com/voice-training/voice-training-service/internal/pkg/validators"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{sessions.ErrNoAudioFile, http.StatusBadRequest, "No audio file"},
	{sessions.ErrMissingUserID, http.StatusBadRequest, "Missing user_id"},
	{community.ErrMissingUserID, http.StatusBadRequest, "Missing user_id"},
	{sessions.ErrInvalidFileType, http.StatusBadRequest, "Invalid file type"},
	{sessions.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "File too large"},
	{users.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{users.ErrUserExists, http.StatusConflict, "User already exists"},
	{sessions.ErrSessionNotFound, http.StatusNotFound, "Session not found"},
	{sessions.ErrAudioFileNotFound, http.StatusNotFound, "Audio file not found"},
	{modules.ErrModuleNotFound, http.StatusNotFound, "Module not found"},
}

// respondError writes the status and message for err. Unknown errors become 500
// and are logged; their text is not exposed.
func respondError(ctx *gin.Context, log logger.Logger, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			ctx.JSON(m.status, ErrorResponse{Error: m.message})
			return
		}
	}

	if errors.Is(err, validators.ErrValidation) {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	log.Error("Request failed", "method", ctx.Request.Method, "path", ctx.Request.URL.Path, "error", err)
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
