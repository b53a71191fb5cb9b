package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/pkg/httputil"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
	"github.com/voice-training/voice-training-service/internal/pkg/strutil"
)

// AudioFormField is the multipart part carrying the recording.
const AudioFormField = "audio"

// AudioHandler defines the interface for handling recordings and their sessions
type AudioHandler interface {
	Upload(ctx *gin.Context)
	GetSessionByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
}

type audioHandler struct {
	uploadService  sessions.AudioUploadService
	sessionService sessions.AudioSessionService
	logger         logger.Logger
}

// NewAudioHandler creates a new AudioHandler
func NewAudioHandler(uploadService sessions.AudioUploadService, sessionService sessions.AudioSessionService, log logger.Logger) AudioHandler {
	return &audioHandler{
		uploadService:  uploadService,
		sessionService: sessionService,
		logger:         log,
	}
}

// Upload handles POST /audio/upload
func (h *audioHandler) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile(AudioFormField)
	if err != nil {
		if isBodyTooLarge(err) {
			respondError(ctx, h.logger, sessions.ErrFileTooLarge)
			return
		}
		respondError(ctx, h.logger, sessions.ErrNoAudioFile)
		return
	}

	userID := strings.TrimSpace(ctx.PostForm("user_id"))
	if userID == "" {
		respondError(ctx, h.logger, sessions.ErrMissingUserID)
		return
	}

	moduleID, err := strutil.ParseOptionalUint(ctx.PostForm("module_id"))
	if err != nil {
		badRequest(ctx, "Invalid module_id")
		return
	}

	session, err := h.uploadService.Upload(ctx.Request.Context(), &sessions.UploadRequest{
		UserID:   userID,
		ModuleID: moduleID,
		File:     fileHeader,
	})
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, UploadResponse{
		SessionID:     session.ID,
		Transcription: session.Transcription,
		Metrics:       NewMetricsResponse(session.Metrics),
	})
}

// GetSessionByID handles GET /audio/sessions/:id
func (h *audioHandler) GetSessionByID(ctx *gin.Context) {
	id, err := strutil.ParseUint(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid session id")
		return
	}

	session, err := h.sessionService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewSessionResponse(session))
}

// DownloadByID handles GET /audio/sessions/:id/file
func (h *audioHandler) DownloadByID(ctx *gin.Context) {
	id, err := strutil.ParseUint(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid session id")
		return
	}

	session, data, err := h.sessionService.DownloadByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.Header("Content-Disposition", httputil.AttachmentDisposition(session.OriginalFilename))
	ctx.Data(http.StatusOK, httputil.AudioContentType(session.OriginalFilename), data)
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
