package middleware

import (
	"net/http"
	"strings"

	"github.com/darshan103/chatpdfbackend/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware guards routes that require a logged-in account. It
// validates the Bearer token and stores its subject and email claims on the
// request context under "accountID" and "email".
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		id, email, err := utils.TokenClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set("accountID", id)
		c.Set("email", email)
		c.Next()
	}
}
