package auth

import (
	"context"

	"github.com/darshan103/chatpdfbackend/models"
)

// SignupRequest carries the signup form fields.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleAuthResponse is returned on a successful federated login.
type GoogleAuthResponse struct {
	Token string                `json:"token"`
	User  *models.GoogleAccount `json:"user"`
}

// AuthService handles signup, email verification and federated login.
type AuthService interface {
	// Signup registers a new unverified account and sends a verification
	// mail on a best-effort basis.
	Signup(ctx context.Context, req SignupRequest) error
	// VerifyEmail checks the (email, token) pair and flips the account to
	// verified. It returns a client-facing message; repeat verification is
	// idempotent.
	VerifyEmail(ctx context.Context, email, token string) (string, error)
	// GoogleLogin verifies a Google ID token, finds or creates the
	// federated account, and issues a session token.
	GoogleLogin(ctx context.Context, idToken string) (*GoogleAuthResponse, error)
}
