package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/darshan103/chatpdfbackend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// authWindow matches the auth endpoint policy: 100 requests per 15 minutes
// per client IP.
const (
	authWindow   = 15 * time.Minute
	authRequests = 100
)

// rateLimiterStore holds a map of IP addresses to their rate limiters.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var limiterStore = &rateLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(authWindow/authRequests), authRequests)
		s.limiters[ip] = limiter
	}
	return limiter
}

// AuthRateLimitMiddleware limits requests to the auth endpoints per IP address.
func AuthRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ip := getClientIP(c)
		limiter := limiterStore.getLimiter(ip)
		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, try again later."})
			return
		}
		c.Next()
	}
}
