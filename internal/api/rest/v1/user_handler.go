package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// UserHandler defines the interface for handling user operations
type UserHandler interface {
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Export(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
	logger      logger.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService, log logger.Logger) UserHandler {
	return &userHandler{userService: userService, logger: log}
}

// Create handles POST /users. An empty body creates a user with a generated ID.
func (h *userHandler) Create(ctx *gin.Context) {
	var request CreateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		badRequest(ctx, "Invalid JSON body")
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	user, err := h.userService.Create(ctx.Request.Context(), &users.CreateUserRequest{
		ID:          request.RequestedID(),
		DisplayName: request.DisplayName,
		Preferences: request.Preferences,
	})
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, CreateUserResponse{ID: user.ID, CreatedAt: user.CreatedAt})
}

// GetByID handles GET /users/:id
func (h *userHandler) GetByID(ctx *gin.Context) {
	user, err := h.userService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, UserResponse{ID: user.ID, DisplayName: user.DisplayName, CreatedAt: user.CreatedAt})
}

// DeleteByID handles DELETE /users/:id
func (h *userHandler) DeleteByID(ctx *gin.Context) {
	if err := h.userService.DeleteByID(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}

// Export handles GET /users/:id/export
func (h *userHandler) Export(ctx *gin.Context) {
	export, err := h.userService.Export(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewExportResponse(export))
}
