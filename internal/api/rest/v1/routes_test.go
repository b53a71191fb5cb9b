//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes_RegistersAPIRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"GET /healthz",
		"GET /metrics",
		"POST /api/users",
		"GET /api/users/:id",
		"DELETE /api/users/:id",
		"GET /api/users/:id/export",
		"POST /api/audio/upload",
		"GET /api/audio/sessions/:id",
		"GET /api/audio/sessions/:id/file",
		"GET /api/modules",
		"POST /api/modules",
		"GET /api/progress/:user_id",
		"GET /api/community",
		"POST /api/community",
	} {
		assert.True(t, registered[want], "route %s not registered", want)
	}
}

func TestServiceEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"voice-training-service","version":"v1"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = serve(r, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
