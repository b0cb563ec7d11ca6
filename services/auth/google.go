package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/darshan103/chatpdfbackend/models"
	"github.com/darshan103/chatpdfbackend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionTokenTTL bounds the locally issued session token.
const sessionTokenTTL = 7 * 24 * time.Hour

func (s *DefaultAuthService) GoogleLogin(ctx context.Context, idToken string) (*GoogleAuthResponse, error) {
	logger := utils.GetLogger()

	if idToken == "" {
		return nil, ValidationError{Message: "No token provided"}
	}

	profile, err := s.Verifier.Verify(idToken, s.GoogleClientID)
	if err != nil {
		logger.Warn("GoogleLogin: token verification failed", zap.Error(err))
		return nil, fmt.Errorf("google login failed: %w", err)
	}
	if !profile.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	account, err := s.GoogleAccounts.GetByEmail(profile.Email)
	if err != nil {
		logger.Error("GoogleLogin: account lookup failed", zap.String("email", profile.Email), zap.Error(err))
		return nil, fmt.Errorf("google login failed")
	}
	if account == nil {
		account = &models.GoogleAccount{
			ID:       uuid.New().String(),
			Name:     profile.Name,
			Email:    profile.Email,
			GoogleID: profile.Subject,
			Avatar:   profile.Picture,
		}
		if err := s.GoogleAccounts.Create(account); err != nil {
			logger.Error("GoogleLogin: failed to create account", zap.String("email", profile.Email), zap.Error(err))
			return nil, fmt.Errorf("google login failed")
		}
	}

	token, err := utils.GenerateToken(account.ID, account.Email, sessionTokenTTL)
	if err != nil {
		logger.Error("GoogleLogin: failed to issue session token", zap.Error(err))
		return nil, fmt.Errorf("google login failed")
	}

	return &GoogleAuthResponse{Token: token, User: account}, nil
}
