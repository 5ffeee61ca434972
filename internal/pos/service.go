package pos

import (
	"context"
	"fmt"

	"github.com/lagranja/vetstore/internal/catalog"
	"github.com/lagranja/vetstore/internal/sales"
	"github.com/lagranja/vetstore/internal/shared"
)

// ProductGetter resolves catalog products for cart additions.
type ProductGetter interface {
	Get(ctx context.Context, id string) (*catalog.Product, error)
}

// SaleCreator records a finalized sale.
type SaleCreator interface {
	Create(ctx context.Context, in sales.CreateInput, createdByID string) (*sales.Sale, error)
}

// Service drives the cart through its lifecycle: building, submitting and —
// only on confirmed success — clearing.
type Service struct {
	catalog ProductGetter
	sales   SaleCreator
}

// NewService constructs a Service.
func NewService(catalog ProductGetter, sales SaleCreator) *Service {
	return &Service{catalog: catalog, sales: sales}
}

// AddCatalogItem resolves the product and adds it to the cart. Inactive
// products cannot be added; lines already in the cart keep their snapshot.
func (s *Service) AddCatalogItem(ctx context.Context, cart *Cart, productID string, quantity int) error {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return err
	}
	if !product.IsActive {
		return fmt.Errorf("%w: product is not for sale", shared.ErrValidation)
	}
	cart.AddCatalogItem(*product, quantity)
	return nil
}

// Submit finalizes the cart as a sale. The cart is cleared only after the
// store confirms the write; on failure every field is left untouched so the
// operator can fix the problem and retry.
func (s *Service) Submit(ctx context.Context, cart *Cart, createdByID string) (*sales.Sale, error) {
	if cart.IsEmpty() {
		return nil, fmt.Errorf("%w: cart is empty", shared.ErrValidation)
	}
	if !cart.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: select a payment method", shared.ErrValidation)
	}

	in := sales.CreateInput{
		DiscountPercent: cart.DiscountPercent,
		PaymentMethod:   cart.PaymentMethod,
		CustomerName:    cart.CustomerName,
		Notes:           cart.Notes,
	}
	for _, line := range cart.Lines {
		in.Items = append(in.Items, sales.CreateItemInput{
			ProductID:         line.ProductID,
			NameSnapshot:      line.Name,
			UnitPriceSnapshot: line.UnitPrice,
			Quantity:          line.Quantity,
		})
	}

	sale, err := s.sales.Create(ctx, in, createdByID)
	if err != nil {
		return nil, err
	}

	cart.Reset()
	return sale, nil
}
