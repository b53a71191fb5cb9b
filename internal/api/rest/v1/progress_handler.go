package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// ProgressHandler serves a user's session timeline
type ProgressHandler interface {
	GetByUserID(ctx *gin.Context)
}

type progressHandler struct {
	progressService sessions.ProgressService
	logger          logger.Logger
}

// NewProgressHandler creates a new ProgressHandler
func NewProgressHandler(progressService sessions.ProgressService, log logger.Logger) ProgressHandler {
	return &progressHandler{progressService: progressService, logger: log}
}

// GetByUserID handles GET /progress/:user_id. Unknown users get an empty timeline.
func (h *progressHandler) GetByUserID(ctx *gin.Context) {
	list, err := h.progressService.UserProgress(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProgressResponse(list))
}
