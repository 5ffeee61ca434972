package users

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/lagranja/vetstore/internal/auth"
	"github.com/lagranja/vetstore/internal/shared"
)

// Service covers SUPER_ADMIN account provisioning.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every account.
func (s *Service) List(ctx context.Context) ([]auth.User, error) {
	return s.repo.List(ctx)
}

// Create provisions a new account with a hashed password.
func (s *Service) Create(ctx context.Context, email, password, role string) (*auth.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", shared.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", shared.ErrValidation)
	}
	if role != shared.RoleAdmin && role != shared.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", shared.ErrValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("users: hash password: %w", err)
	}
	return s.repo.Create(ctx, email, string(hash), role)
}
