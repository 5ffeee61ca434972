package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lagranja/vetstore/internal/auth"
	"github.com/lagranja/vetstore/internal/shared"
)

type fakeRepository struct {
	users []auth.User
}

func (f *fakeRepository) List(ctx context.Context) ([]auth.User, error) {
	return f.users, nil
}

func (f *fakeRepository) Create(ctx context.Context, email, passwordHash, role string) (*auth.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return nil, fmt.Errorf("%w: email already registered", shared.ErrValidation)
		}
	}
	u := auth.User{ID: fmt.Sprintf("u-%d", len(f.users)+1), Email: email, PasswordHash: passwordHash, Role: role}
	f.users = append(f.users, u)
	return &u, nil
}

func TestServiceCreate(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo)

	u, err := svc.Create(context.Background(), "  Vet@Clinica.CO  ", "super-secret", shared.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "vet@clinica.co", u.Email)
	assert.Equal(t, shared.RoleAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("super-secret")))
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(&fakeRepository{})
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"blank email", "  ", "super-secret", shared.RoleAdmin},
		{"short password", "vet@clinica.co", "short", shared.RoleAdmin},
		{"unknown role", "vet@clinica.co", "super-secret", "MANAGER"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.email, tc.password, tc.role)
			assert.ErrorIs(t, err, shared.ErrValidation)
		})
	}
}

func TestServiceCreateDuplicateEmail(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "vet@clinica.co", "super-secret", shared.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "VET@clinica.co", "super-secret", shared.RoleAdmin)
	assert.ErrorIs(t, err, shared.ErrValidation)
}
