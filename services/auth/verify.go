package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/darshan103/chatpdfbackend/utils"

	"go.uber.org/zap"
)

func (s *DefaultAuthService) VerifyEmail(ctx context.Context, email, token string) (string, error) {
	logger := utils.GetLogger()

	if email == "" || token == "" {
		return "", ValidationError{Message: "Missing token or email."}
	}

	account, err := s.Accounts.GetByEmail(email)
	if err != nil {
		logger.Error("VerifyEmail: lookup failed", zap.String("email", email), zap.Error(err))
		return "", fmt.Errorf("verification failed, please try again")
	}
	if account == nil {
		return "", ErrInvalidToken
	}

	// A verified account has no token left to compare; repeating the
	// verification call is a no-op, not an error.
	if account.IsVerified {
		return "Email already verified.", nil
	}

	if account.VerificationToken == "" || account.VerificationToken != token {
		return "", ErrInvalidToken
	}

	if account.VerificationTokenExpires == nil || account.VerificationTokenExpires.Before(time.Now()) {
		return "", ErrTokenExpired
	}

	account.IsVerified = true
	account.VerificationToken = ""
	account.VerificationTokenExpires = nil

	if err := s.Accounts.Update(account); err != nil {
		logger.Error("VerifyEmail: failed to update account", zap.String("email", email), zap.Error(err))
		return "", fmt.Errorf("verification failed, please try again")
	}

	return "Email verified. You can now log in.", nil
}
