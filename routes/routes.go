package routes

import (
	"net/http"
	"time"

	"github.com/darshan103/chatpdfbackend/config"
	"github.com/darshan103/chatpdfbackend/handlers"
	"github.com/darshan103/chatpdfbackend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAskAIRoutes registers the upload and question endpoints.
// These are unauthenticated.
func RegisterAskAIRoutes(r *gin.Engine, h *handlers.AskAIHandler) {
	api := r.Group("/api")
	{
		api.POST("/upload", h.UploadFileHandler)
		api.POST("/askgemini", h.AskGeminiHandler)
	}
}

// RegisterAuthRoutes registers the account endpoints behind the auth rate limit.
func RegisterAuthRoutes(r *gin.Engine, h *handlers.AuthHandler) {
	api := r.Group("/api/auth")
	api.Use(middleware.AuthRateLimitMiddleware())
	{
		api.POST("/signup", h.SignupHandler)
		api.GET("/verify-email", h.VerifyEmailHandler)
		api.POST("/google-login", h.GoogleLoginHandler)
		api.GET("/me", middleware.JWTAuthMiddleware(), h.MeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires CORS and all route groups.
func RegisterRoutes(r *gin.Engine, askAI *handlers.AskAIHandler, auth *handlers.AuthHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAskAIRoutes(r, askAI)
	RegisterAuthRoutes(r, auth)
	RegisterHealthRoute(r)
}
