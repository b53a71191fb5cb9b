package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// ModuleHandler defines the interface for handling training modules
type ModuleHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
}

type moduleHandler struct {
	moduleService modules.ModuleService
	logger        logger.Logger
}

// NewModuleHandler creates a new ModuleHandler
func NewModuleHandler(moduleService modules.ModuleService, log logger.Logger) ModuleHandler {
	return &moduleHandler{moduleService: moduleService, logger: log}
}

// List handles GET /modules
func (h *moduleHandler) List(ctx *gin.Context) {
	list, err := h.moduleService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	resp := make([]ModuleResponse, len(list))
	for i, m := range list {
		resp[i] = NewModuleResponse(m)
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create handles POST /modules
func (h *moduleHandler) Create(ctx *gin.Context) {
	var request CreateModuleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "Invalid JSON body")
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	module, err := h.moduleService.Create(ctx.Request.Context(), &modules.CreateModuleRequest{
		Title:       request.Title,
		Description: request.Description,
		Level:       request.Level,
		Steps:       request.Steps,
	})
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, IDResponse{ID: module.ID})
}
