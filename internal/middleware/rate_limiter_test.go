package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amalfamous/QuickCRM/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", handler, func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksAboveLimit(t *testing.T) {
	r := newLimitedRouter(middleware.RateLimiter(2, time.Minute))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1").Code)

	w := get(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Windows are per IP: another client is unaffected.
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2").Code)
}

func TestRateLimiterWindowResets(t *testing.T) {
	r := newLimitedRouter(middleware.RateLimiter(1, 10*time.Millisecond))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1").Code)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1").Code)
}

func TestLoginRateLimiterTwentyPerMinute(t *testing.T) {
	r := newLimitedRouter(middleware.LoginRateLimiter())

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, get(r, "10.0.0.3").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.3").Code)
}
