package auth

import "errors"

// ValidationError reports malformed signup input. The message is safe to
// show to the caller.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

var (
	// ErrEmailTaken signals a signup attempt with an already registered email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidToken signals that no account matches the (email, token) pair.
	ErrInvalidToken = errors.New("invalid token or email")
	// ErrTokenExpired signals a matching but expired verification token.
	ErrTokenExpired = errors.New("verification token has expired")
	// ErrEmailNotVerified signals a federated login with an unverified email.
	ErrEmailNotVerified = errors.New("google email not verified")
)
