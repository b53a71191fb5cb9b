package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voice-training/voice-training-service/internal/observability"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// RequestLogger logs every request through log and records its duration metric.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		elapsed := time.Since(start)
		status := ctx.Writer.Status()
		observability.ObserveHTTPRequest(ctx.FullPath(), ctx.Request.Method, status, elapsed)

		args := []any{
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
			"client_ip", ctx.ClientIP(),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("HTTP request", args...)
		case status >= http.StatusBadRequest:
			log.Warn("HTTP request", args...)
		default:
			log.Info("HTTP request", args...)
		}
	}
}

// BodyLimit caps the request body at maxBytes.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.ContentLength > maxBytes {
			ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
			return
		}
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}
