package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// Services bundles the application services behind the API.
type Services struct {
	Users    users.UserService
	Upload   sessions.AudioUploadService
	Sessions sessions.AudioSessionService
	Progress sessions.ProgressService
	Modules  modules.ModuleService
	Posts    community.PostService
}

// SetupRoutes registers the service endpoints and the API routes for version 1.
// Upload bodies larger than maxUploadBytes are rejected with 413.
func SetupRoutes(r *gin.Engine, services Services, maxUploadBytes int64, log logger.Logger) {
	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, InfoResponse{Name: ServiceName, Version: Version})
	})
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group(BasePath) // lookup in version file

	// Users Routes
	userHandler := NewUserHandler(services.Users, log)
	v1.POST("/users", userHandler.Create)
	v1.GET("/users/:id", userHandler.GetByID)
	v1.DELETE("/users/:id", userHandler.DeleteByID)
	v1.GET("/users/:id/export", userHandler.Export)

	// Audio Routes
	audioHandler := NewAudioHandler(services.Upload, services.Sessions, log)
	v1.POST("/audio/upload", BodyLimit(maxUploadBytes), audioHandler.Upload)
	v1.GET("/audio/sessions/:id", audioHandler.GetSessionByID)
	v1.GET("/audio/sessions/:id/file", audioHandler.DownloadByID)

	// Modules Routes
	moduleHandler := NewModuleHandler(services.Modules, log)
	v1.GET("/modules", moduleHandler.List)
	v1.POST("/modules", moduleHandler.Create)

	// Progress Routes
	progressHandler := NewProgressHandler(services.Progress, log)
	v1.GET("/progress/:user_id", progressHandler.GetByUserID)

	// Community Routes
	communityHandler := NewCommunityHandler(services.Posts, log)
	v1.GET("/community", communityHandler.List)
	v1.POST("/community", communityHandler.Create)
}
