package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupBodyLimitRouter(maxBytes int64) *gin.Engine {
	router := gin.New()
	router.Use(BodyLimit(maxBytes))
	router.POST("/test", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		c.JSON(http.StatusOK, gin.H{"size": len(body)})
	})
	return router
}

func TestBodyLimitWithinLimit(t *testing.T) {
	router := setupBodyLimitRouter(1024)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/test", bytes.NewReader([]byte(`{"name":"ok"}`)))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBodyLimitExceedsContentLength(t *testing.T) {
	router := setupBodyLimitRouter(16)

	payload := strings.Repeat("x", 64)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/test", strings.NewReader(payload))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "REQUEST_TOO_LARGE")
}

func TestBodyLimitStreamingBody(t *testing.T) {
	router := setupBodyLimitRouter(16)

	// No Content-Length set, so the limit is enforced by the reader
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/test", io.NopCloser(strings.NewReader(strings.Repeat("y", 64))))
	req.ContentLength = -1
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
