package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darshan103/chatpdfbackend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthRateLimitMiddleware())
	r.POST("/api/auth/signup", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func doRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRateLimit_CapsPerIP(t *testing.T) {
	router := newLimitedRouter()

	for i := 0; i < authRequests; i++ {
		w := doRequest(router, "10.1.1.1")
		require.Equal(t, http.StatusOK, w.Code, "request %d within the window", i)
	}

	w := doRequest(router, "10.1.1.1")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestAuthRateLimit_IsolatesClients(t *testing.T) {
	router := newLimitedRouter()

	for i := 0; i < authRequests+1; i++ {
		doRequest(router, "10.2.2.2")
	}

	// A different client IP is not affected.
	w := doRequest(router, "10.3.3.3")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRateLimit_LogsRejections(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	prev := utils.Logger
	utils.Logger = zap.New(core)
	defer func() { utils.Logger = prev }()

	router := newLimitedRouter()
	for i := 0; i < authRequests+1; i++ {
		doRequest(router, "10.4.4.4")
	}

	entries := logs.FilterMessage("Rate limit exceeded").All()
	require.Len(t, entries, 1)
	require.Equal(t, "10.4.4.4", entries[0].ContextMap()["ip"])
}
