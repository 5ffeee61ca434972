package expenses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lagranja/vetstore/internal/sales"
	"github.com/lagranja/vetstore/internal/shared"
)

// Input carries the writable fields of an expense.
type Input struct {
	Date          *time.Time `json:"date"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	Category      string     `json:"category" validate:"required"`
	PaymentMethod *string    `json:"payment_method"`
	Notes         string     `json:"notes"`
}

// Service implements expense business rules.
type Service struct {
	repo  Repository
	cache sales.Invalidator
	now   func() time.Time
}

// NewService constructs a Service. cache may be nil.
func NewService(repo Repository, cache sales.Invalidator) *Service {
	return &Service{repo: repo, cache: cache, now: time.Now}
}

// List returns expenses, optionally scoped to a date range, newest first.
func (s *Service) List(ctx context.Context, rng *shared.Range) ([]Expense, error) {
	return s.repo.List(ctx, rng)
}

// Get returns one expense.
func (s *Service) Get(ctx context.Context, id string) (*Expense, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and records an expense attributed to the creating user.
func (s *Service) Create(ctx context.Context, in Input, createdByID string) (*Expense, error) {
	if createdByID == "" {
		return nil, shared.ErrUnauthorized
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	e := Expense{
		Date:          s.now(),
		Amount:        in.Amount,
		Category:      strings.TrimSpace(in.Category),
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedByID:   createdByID,
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

// Update validates and persists changes to an expense.
func (s *Service) Update(ctx context.Context, id string, in Input) (*Expense, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Amount = in.Amount
	existing.Category = strings.TrimSpace(in.Category)
	existing.PaymentMethod = in.PaymentMethod
	existing.Notes = in.Notes
	if in.Date != nil {
		existing.Date = *in.Date
	}
	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return existing, nil
}

// Delete removes an expense.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func validateInput(in Input) error {
	if in.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", shared.ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", shared.ErrValidation)
	}
	if in.PaymentMethod != nil && !sales.PaymentMethod(*in.PaymentMethod).Valid() {
		return fmt.Errorf("%w: unknown payment method %q", shared.ErrValidation, *in.PaymentMethod)
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Bump(ctx)
	}
}
