//go:build unit
// +build unit

package v1

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/voice-training/voice-training-service/internal/pkg/testutil"
)

func TestRequestLogger_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(testutil.SetupTestLogger(t)))
	r.GET("/teapot", func(ctx *gin.Context) { ctx.Status(http.StatusTeapot) })

	w := serve(r, http.MethodGet, "/teapot", nil, "")
	assert.Equal(t, http.StatusTeapot, w.Code)

	w = serve(r, http.MethodGet, "/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/echo", BodyLimit(8), func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	w := serve(r, http.MethodPost, "/echo", strings.NewReader("tiny"), "text/plain")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(r, http.MethodPost, "/echo", strings.NewReader("far too large"), "text/plain")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "File too large", errorMessage(t, w))
}
