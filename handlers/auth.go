package handlers

import (
	"errors"
	"net/http"

	"github.com/darshan103/chatpdfbackend/services/auth"
	"github.com/darshan103/chatpdfbackend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes signup, email verification and Google login.
type AuthHandler struct {
	AuthService auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: svc}
}

// GoogleLoginRequest is the expected input for POST /api/auth/google-login.
type GoogleLoginRequest struct {
	Token string `json:"token"`
}

// SignupHandler handles POST /api/auth/signup.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	if err := h.AuthService.Signup(c.Request.Context(), req); err != nil {
		var validationErr auth.ValidationError
		switch {
		case errors.As(err, &validationErr):
			utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
		case errors.Is(err, auth.ErrEmailTaken):
			utils.JSONError(c, http.StatusConflict, "Email already in use.", "")
		default:
			logger.Error("Signup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created. Check your email for verification."})
}

// VerifyEmailHandler handles GET /api/auth/verify-email?token=..&email=..
func (h *AuthHandler) VerifyEmailHandler(c *gin.Context) {
	logger := utils.GetLogger()

	token := c.Query("token")
	email := c.Query("email")

	message, err := h.AuthService.VerifyEmail(c.Request.Context(), email, token)
	if err != nil {
		var validationErr auth.ValidationError
		switch {
		case errors.As(err, &validationErr):
			utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
		case errors.Is(err, auth.ErrInvalidToken):
			utils.JSONError(c, http.StatusBadRequest, "Invalid token or email.", "")
		case errors.Is(err, auth.ErrTokenExpired):
			utils.JSONError(c, http.StatusBadRequest, "Verification token has expired.", "")
		default:
			logger.Error("Email verification failed", zap.String("email", email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GoogleLoginHandler handles POST /api/auth/google-login.
func (h *AuthHandler) GoogleLoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	resp, err := h.AuthService.GoogleLogin(c.Request.Context(), req.Token)
	if err != nil {
		var validationErr auth.ValidationError
		switch {
		case errors.As(err, &validationErr):
			utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
		case errors.Is(err, auth.ErrEmailNotVerified):
			utils.JSONError(c, http.StatusForbidden, "Google email not verified", "")
		default:
			logger.Error("Google login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Google login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": resp.Token, "user": resp.User})
}

// MeHandler handles GET /api/auth/me. It echoes the identity claims the auth
// middleware extracted from the session token.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":    c.GetString("accountID"),
		"email": c.GetString("email"),
	})
}
