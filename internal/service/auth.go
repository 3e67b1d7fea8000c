package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oshaad/backoffice/internal/models"
	"github.com/oshaad/backoffice/internal/token"
)

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminRepository defines the persistence operations required by AuthService.
type AdminRepository interface {
	// FindByEmail fetches an admin; sql.ErrNoRows when the email is unknown.
	FindByEmail(ctx context.Context, email string) (models.Admin, error)
	// UpsertAdmin creates an admin or replaces its password hash.
	UpsertAdmin(ctx context.Context, admin models.Admin) error
}

// AuthService implements admin authentication by delegating to an
// AdminRepository and issuing signed bearer tokens.
type AuthService struct {
	repo     AdminRepository
	secret   string
	tokenTTL time.Duration
}

// NewAuthService constructs a new AuthService using the provided repository,
// token signing secret, and token lifetime.
func NewAuthService(repo AdminRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, secret: secret, tokenTTL: tokenTTL}
}

// Login verifies the email/password pair and returns a signed bearer token.
// Returns ErrInvalidCredentials when either part is wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return token.Generate(admin.ID, s.secret, s.tokenTTL)
}

// EnsureAdmin seeds the back-office login: it hashes the password and
// upserts the admin record, so restarting with new credentials rotates them.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpsertAdmin(ctx, models.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	})
}
