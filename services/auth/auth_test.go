package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/darshan103/chatpdfbackend/config"
	"github.com/darshan103/chatpdfbackend/models"
	"github.com/darshan103/chatpdfbackend/services/socialauth"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- fakes ---

type fakeAccountRepo struct {
	byEmail map[string]*models.Account

	created []*models.Account
	updated []*models.Account

	getErr    error
	createErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*models.Account)}
}

func (f *fakeAccountRepo) GetByEmail(email string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) Create(account *models.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, account)
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) Update(account *models.Account) error {
	f.updated = append(f.updated, account)
	f.byEmail[account.Email] = account
	return nil
}

type fakeGoogleRepo struct {
	byEmail map[string]*models.GoogleAccount
	created []*models.GoogleAccount
}

func newFakeGoogleRepo() *fakeGoogleRepo {
	return &fakeGoogleRepo{byEmail: make(map[string]*models.GoogleAccount)}
}

func (f *fakeGoogleRepo) GetByEmail(email string) (*models.GoogleAccount, error) {
	return f.byEmail[email], nil
}

func (f *fakeGoogleRepo) Create(account *models.GoogleAccount) error {
	f.created = append(f.created, account)
	f.byEmail[account.Email] = account
	return nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

type fakeVerifier struct {
	profile *socialauth.Profile
	err     error
}

func (f fakeVerifier) Verify(tokenStr, audience string) (*socialauth.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func newAuthService(accounts *fakeAccountRepo, googleAccounts *fakeGoogleRepo, m *fakeMailer, v fakeVerifier) *DefaultAuthService {
	return &DefaultAuthService{
		Accounts:       accounts,
		GoogleAccounts: googleAccounts,
		Mailer:         m,
		Verifier:       v,
		BaseURL:        "http://localhost:4000",
		GoogleClientID: "client-id",
	}
}

// --- signup ---

func TestSignup_CreatesUnverifiedAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	m := &fakeMailer{}
	svc := newAuthService(repo, newFakeGoogleRepo(), m, fakeVerifier{})

	err := svc.Signup(context.Background(), SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	account := repo.created[0]
	require.False(t, account.IsVerified)
	require.NotEmpty(t, account.ID)
	require.Len(t, account.VerificationToken, 64)
	require.NotNil(t, account.VerificationTokenExpires)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), *account.VerificationTokenExpires, time.Minute)

	// Stored hash matches the submitted password.
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret1")))
	require.Equal(t, []string{"alice@example.com"}, m.sent)
}

func TestSignup_Validation(t *testing.T) {
	svc := newAuthService(newFakeAccountRepo(), newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{})

	tests := []struct {
		name string
		req  SignupRequest
	}{
		{"missing email", SignupRequest{Password: "secret1"}},
		{"missing password", SignupRequest{Email: "a@b.com"}},
		{"bad email format", SignupRequest{Email: "not-an-email", Password: "secret1"}},
		{"short password", SignupRequest{Email: "a@b.com", Password: "12345"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Signup(context.Background(), tt.req)
			var validationErr ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.byEmail["taken@example.com"] = &models.Account{ID: "1", Email: "taken@example.com"}
	svc := newAuthService(repo, newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{})

	err := svc.Signup(context.Background(), SignupRequest{
		Email:    "taken@example.com",
		Password: "secret1",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
	require.Empty(t, repo.created, "no write on conflict")
}

func TestSignup_MailFailureIsNotFatal(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAuthService(repo, newFakeGoogleRepo(), &fakeMailer{err: errors.New("smtp down")}, fakeVerifier{})

	err := svc.Signup(context.Background(), SignupRequest{
		Email:    "bob@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
}

// --- email verification ---

func unverifiedAccount(token string, expires time.Time) *models.Account {
	return &models.Account{
		ID:                       "acc-1",
		Email:                    "alice@example.com",
		VerificationToken:        token,
		VerificationTokenExpires: &expires,
	}
}

func TestVerifyEmail_Success(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.byEmail["alice@example.com"] = unverifiedAccount("tok", time.Now().Add(time.Hour))
	svc := newAuthService(repo, newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{})

	message, err := svc.VerifyEmail(context.Background(), "alice@example.com", "tok")
	require.NoError(t, err)
	require.Equal(t, "Email verified. You can now log in.", message)
	require.Len(t, repo.updated, 1)

	account := repo.updated[0]
	require.True(t, account.IsVerified)
	require.Empty(t, account.VerificationToken)
	require.Nil(t, account.VerificationTokenExpires)
}

func TestVerifyEmail_Idempotent(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.byEmail["alice@example.com"] = unverifiedAccount("tok", time.Now().Add(time.Hour))
	svc := newAuthService(repo, newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{})

	_, err := svc.VerifyEmail(context.Background(), "alice@example.com", "tok")
	require.NoError(t, err)

	// A second identical call is a no-op, not an error.
	message, err := svc.VerifyEmail(context.Background(), "alice@example.com", "tok")
	require.NoError(t, err)
	require.Equal(t, "Email already verified.", message)
	require.Len(t, repo.updated, 1, "verified flag flips exactly once")
}

func TestVerifyEmail_AlreadyVerified(t *testing.T) {
	repo := newFakeAccountRepo()
	account := unverifiedAccount("tok", time.Now().Add(time.Hour))
	account.IsVerified = true
	repo.byEmail["alice@example.com"] = account
	svc := newAuthService(repo, newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{})

	message, err := svc.VerifyEmail(context.Background(), "alice@example.com", "tok")
	require.NoError(t, err)
	require.Equal(t, "Email already verified.", message)
	require.Empty(t, repo.updated, "no write on repeat verification")
}

func TestVerifyEmail_Expired(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.byEmail["alice@example.com"] = unverifiedAccount("tok", time.Now().Add(-time.Hour))
	svc := newAuthService(repo, newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{})

	_, err := svc.VerifyEmail(context.Background(), "alice@example.com", "tok")
	require.ErrorIs(t, err, ErrTokenExpired)
	require.NotErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEmail_InvalidToken(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.byEmail["alice@example.com"] = unverifiedAccount("tok", time.Now().Add(time.Hour))
	svc := newAuthService(repo, newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{})

	_, err := svc.VerifyEmail(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEmail_MissingParams(t *testing.T) {
	svc := newAuthService(newFakeAccountRepo(), newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{})

	_, err := svc.VerifyEmail(context.Background(), "", "tok")
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
}

// --- google login ---

func verifiedProfile() *socialauth.Profile {
	return &socialauth.Profile{
		Email:         "carol@example.com",
		EmailVerified: true,
		Name:          "Carol",
		Picture:       "https://example.com/avatar.png",
		Subject:       "google-sub-1",
	}
}

func TestGoogleLogin_CreatesAccountOnce(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	googleAccounts := newFakeGoogleRepo()
	svc := newAuthService(newFakeAccountRepo(), googleAccounts, &fakeMailer{}, fakeVerifier{profile: verifiedProfile()})

	first, err := svc.GoogleLogin(context.Background(), "id-token")
	require.NoError(t, err)
	require.NotEmpty(t, first.Token)
	require.Equal(t, "carol@example.com", first.User.Email)
	require.Equal(t, "google-sub-1", first.User.GoogleID)

	second, err := svc.GoogleLogin(context.Background(), "id-token")
	require.NoError(t, err)
	require.Equal(t, first.User.ID, second.User.ID)
	require.Len(t, googleAccounts.created, 1, "account created at most once per email")
}

func TestGoogleLogin_UnverifiedEmail(t *testing.T) {
	profile := verifiedProfile()
	profile.EmailVerified = false
	svc := newAuthService(newFakeAccountRepo(), newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{profile: profile})

	_, err := svc.GoogleLogin(context.Background(), "id-token")
	require.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestGoogleLogin_MissingToken(t *testing.T) {
	svc := newAuthService(newFakeAccountRepo(), newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{})

	_, err := svc.GoogleLogin(context.Background(), "")
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestGoogleLogin_VerifierFailure(t *testing.T) {
	svc := newAuthService(newFakeAccountRepo(), newFakeGoogleRepo(), &fakeMailer{}, fakeVerifier{err: errors.New("bad signature")})

	_, err := svc.GoogleLogin(context.Background(), "id-token")
	require.Error(t, err)
}
