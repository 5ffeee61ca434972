package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/lagranja/vetstore/internal/shared"
)

// Service wraps authentication business rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate validates email/password credentials. Lookup failures and
// password mismatches collapse into the same error so callers cannot probe
// which accounts exist.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

// CurrentUser resolves the account behind an authenticated session.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}
