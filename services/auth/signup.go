package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"regexp"
	"time"

	accountRepo "github.com/darshan103/chatpdfbackend/database/repository/account"
	googleRepo "github.com/darshan103/chatpdfbackend/database/repository/googleuser"
	"github.com/darshan103/chatpdfbackend/models"
	"github.com/darshan103/chatpdfbackend/services/mailer"
	"github.com/darshan103/chatpdfbackend/services/socialauth"
	"github.com/darshan103/chatpdfbackend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	verificationTokenTTL = 24 * time.Hour
	minPasswordLength    = 6
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultAuthService is the production AuthService implementation.
type DefaultAuthService struct {
	Accounts       accountRepo.AccountRepository
	GoogleAccounts googleRepo.GoogleAccountRepository
	Mailer         mailer.Mailer
	Verifier       socialauth.IdentityVerifier

	// BaseURL is the externally visible address used in verification links.
	BaseURL string
	// GoogleClientID is the audience expected in Google ID tokens.
	GoogleClientID string
}

func (s *DefaultAuthService) Signup(ctx context.Context, req SignupRequest) error {
	logger := utils.GetLogger()

	if req.Email == "" || req.Password == "" {
		return ValidationError{Message: "Email and password are required."}
	}
	if !emailRegex.MatchString(req.Email) {
		return ValidationError{Message: "Invalid email format."}
	}
	if len(req.Password) < minPasswordLength {
		return ValidationError{Message: "Password must be at least 6 characters."}
	}

	existing, err := s.Accounts.GetByEmail(req.Email)
	if err != nil {
		logger.Error("Signup: failed to check for existing account", zap.Error(err))
		return fmt.Errorf("signup failed, please try again")
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Signup: failed to hash password", zap.Error(err))
		return fmt.Errorf("signup failed, please try again")
	}

	token, err := newVerificationToken()
	if err != nil {
		logger.Error("Signup: failed to generate verification token", zap.Error(err))
		return fmt.Errorf("signup failed, please try again")
	}
	expires := time.Now().Add(verificationTokenTTL)

	account := &models.Account{
		ID:                       uuid.New().String(),
		Name:                     req.Name,
		Email:                    req.Email,
		PasswordHash:             string(hashed),
		VerificationToken:        token,
		VerificationTokenExpires: &expires,
	}

	if err := s.Accounts.Create(account); err != nil {
		logger.Error("Signup: failed to create account", zap.Error(err))
		return fmt.Errorf("signup failed, please try again")
	}

	// Mail delivery is best effort; the account exists either way.
	if err := s.Mailer.Send(account.Email, "Verify your email", s.verificationMail(account)); err != nil {
		logger.Error("Signup: failed to send verification email",
			zap.String("email", account.Email), zap.Error(err))
	}

	return nil
}

func (s *DefaultAuthService) verificationMail(account *models.Account) string {
	verifyURL := fmt.Sprintf("%s/api/auth/verify-email?token=%s&email=%s",
		s.BaseURL, account.VerificationToken, url.QueryEscape(account.Email))

	return fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Thank you for signing up. Click the link below to verify your email address:</p>
		<p><a href="%s">Verify email</a></p>
		<p>If you didn't sign up, ignore this email.</p>
	`, account.Name, verifyURL)
}

func newVerificationToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
