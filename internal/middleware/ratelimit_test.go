package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandipmavi/Backend-yt/internal/auth"
)

func newLimitedRouter(rl *RateLimiter, tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(rl, tokens))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func TestRateLimiterAnonymous(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	rl := NewRateLimiter(2, 2) // 2 requests per second, burst of 2
	router := newLimitedRouter(rl, tokens)

	// First two requests should succeed
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Third request should be rate limited
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiterKeysByUser(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	rl := NewRateLimiter(1, 1)
	router := newLimitedRouter(rl, tokens)

	tokenA, err := tokens.Issue("651fa0c2b7a4f0c9d8e5a111", "a@x.com", "", "ChannelA", "")
	require.NoError(t, err)
	tokenB, err := tokens.Issue("651fa0c2b7a4f0c9d8e5a222", "b@x.com", "", "ChannelB", "")
	require.NoError(t, err)

	// Two different users behind the same IP each get their own bucket.
	for _, token := range []string{tokenA, tokenB} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// The same user's second request exhausts their bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", tokenA)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiterInvalidTokenFallsBackToIP(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	rl := NewRateLimiter(1, 1)
	router := newLimitedRouter(rl, tokens)

	// A garbage token shares the anonymous IP bucket.
	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		if i == 1 {
			req.Header.Set("Authorization", "not-a-token")
		}
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code)
	}
}
