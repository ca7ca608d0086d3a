//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"driftwell/internal/handler/middleware"
	"driftwell/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cors.New panics when the config allows no origins at all, so the test
// config has to carry a usable CORS section.
func TestNewCORSMiddlewareFromTestConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var corsHandler gin.HandlerFunc
	require.NotPanics(t, func() {
		corsHandler = middleware.NewCORSMiddleware(config.NewTestConfig().CORS)
	})

	router := gin.New()
	router.Use(corsHandler)
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
