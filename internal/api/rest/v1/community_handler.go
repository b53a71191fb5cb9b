package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// CommunityHandler defines the interface for handling community posts
type CommunityHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
}

type communityHandler struct {
	postService community.PostService
	logger      logger.Logger
}

// NewCommunityHandler creates a new CommunityHandler
func NewCommunityHandler(postService community.PostService, log logger.Logger) CommunityHandler {
	return &communityHandler{postService: postService, logger: log}
}

// List handles GET /community
func (h *communityHandler) List(ctx *gin.Context) {
	posts, err := h.postService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	resp := make([]PostResponse, len(posts))
	for i, p := range posts {
		resp[i] = NewPostResponse(p)
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create handles POST /community
func (h *communityHandler) Create(ctx *gin.Context) {
	var request CreatePostRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "Invalid JSON body")
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	post, err := h.postService.Create(ctx.Request.Context(), &community.CreatePostRequest{
		UserID:         request.UserID,
		Title:          request.Title,
		Body:           request.Body,
		AudioSessionID: request.AudioSessionID,
		IsAnonymous:    request.IsAnonymous,
	})
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, IDResponse{ID: post.ID})
}
