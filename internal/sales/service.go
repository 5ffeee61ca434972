package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lagranja/vetstore/internal/shared"
)

// CreateItemInput is one line of a sale being recorded.
type CreateItemInput struct {
	ProductID         *string `json:"product_id"`
	NameSnapshot      string  `json:"name_snapshot"`
	UnitPriceSnapshot float64 `json:"unit_price_snapshot"`
	Quantity          int     `json:"quantity"`
}

// CreateInput is a sale being recorded. Subtotal and total are recomputed
// server-side from the items and discount, never trusted from the caller.
type CreateInput struct {
	Date            *time.Time        `json:"date"`
	DiscountPercent float64           `json:"discount_percent"`
	PaymentMethod   PaymentMethod     `json:"payment_method"`
	CustomerName    string            `json:"customer_name"`
	Notes           string            `json:"notes"`
	Items           []CreateItemInput `json:"items"`
}

// Invalidator drops cached dashboard aggregates after a mutation.
type Invalidator interface {
	Bump(ctx context.Context) error
}

// Service implements sale recording and querying.
type Service struct {
	repo  Repository
	cache Invalidator
	now   func() time.Time
}

// NewService constructs a Service. cache may be nil.
func NewService(repo Repository, cache Invalidator) *Service {
	return &Service{repo: repo, cache: cache, now: time.Now}
}

// Create validates and records a sale with its items atomically.
func (s *Service) Create(ctx context.Context, in CreateInput, createdByID string) (*Sale, error) {
	if createdByID == "" {
		return nil, shared.ErrUnauthorized
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: sale must have at least one item", shared.ErrValidation)
	}
	if !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", shared.ErrValidation, in.PaymentMethod)
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount must be between 0 and 100", shared.ErrValidation)
	}

	sale := Sale{
		ID:              NewSaleID(),
		Date:            s.now(),
		DiscountPercent: in.DiscountPercent,
		PaymentMethod:   in.PaymentMethod,
		CustomerName:    in.CustomerName,
		Notes:           in.Notes,
		CreatedByID:     createdByID,
		CreatedAt:       s.now(),
	}
	if in.Date != nil {
		sale.Date = *in.Date
	}

	for _, item := range in.Items {
		if strings.TrimSpace(item.NameSnapshot) == "" {
			return nil, fmt.Errorf("%w: item name is required", shared.ErrValidation)
		}
		if item.UnitPriceSnapshot <= 0 {
			return nil, fmt.Errorf("%w: item price must be positive", shared.ErrValidation)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item quantity must be at least 1", shared.ErrValidation)
		}
		line := SaleItem{
			ID:                NewSaleID(),
			SaleID:            sale.ID,
			ProductID:         item.ProductID,
			NameSnapshot:      item.NameSnapshot,
			UnitPriceSnapshot: item.UnitPriceSnapshot,
			Quantity:          item.Quantity,
			Subtotal:          item.UnitPriceSnapshot * float64(item.Quantity),
		}
		sale.Subtotal += line.Subtotal
		sale.Items = append(sale.Items, line)
	}

	discountAmount := sale.Subtotal * sale.DiscountPercent / 100
	sale.Total = sale.Subtotal - discountAmount
	if sale.Total < 0 {
		sale.Total = 0
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &sale, nil
}

// List returns sales, optionally scoped to a date range, newest first.
func (s *Service) List(ctx context.Context, rng *shared.Range) ([]Sale, error) {
	return s.repo.List(ctx, rng)
}

// Get returns one sale with its items.
func (s *Service) Get(ctx context.Context, id string) (*Sale, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes a sale and its items.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Bump(ctx)
	}
}
