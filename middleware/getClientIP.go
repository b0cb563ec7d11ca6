package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the client address for rate limiting. Proxy headers
// take precedence so limits apply to the originating client, not the proxy.
func getClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return c.ClientIP()
}
