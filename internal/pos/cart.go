// Package pos implements the point-of-sale cart: an in-memory, single-session
// state machine that only touches the store when a sale is submitted.
package pos

import (
	"fmt"
	"strings"

	"github.com/lagranja/vetstore/internal/catalog"
	"github.com/lagranja/vetstore/internal/sales"
	"github.com/lagranja/vetstore/internal/shared"
)

// Line is one cart entry. Name and price are frozen at add time; later
// catalog edits never reach an open cart.
type Line struct {
	ProductID    *string `json:"product_id"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	LineSubtotal float64 `json:"subtotal"`
}

// Cart is the working state of one sale in progress.
type Cart struct {
	Lines           []Line              `json:"lines"`
	DiscountPercent float64             `json:"discount_percent"`
	PaymentMethod   sales.PaymentMethod `json:"payment_method"`
	CustomerName    string              `json:"customer_name"`
	Notes           string              `json:"notes"`
}

// NewCart returns an empty cart with the default payment method.
func NewCart() *Cart {
	return &Cart{PaymentMethod: sales.PaymentCash}
}

// AddCatalogItem adds quantity units of a catalog product. If a line for the
// product already exists its quantity is incremented instead of appending a
// duplicate. Quantities below 1 are clamped to 1.
func (c *Cart) AddCatalogItem(p catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID != nil && *c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity += quantity
			c.Lines[i].LineSubtotal = c.Lines[i].UnitPrice * float64(c.Lines[i].Quantity)
			return
		}
	}
	id := p.ID
	c.Lines = append(c.Lines, Line{
		ProductID:    &id,
		Name:         p.Name,
		UnitPrice:    p.Price,
		Quantity:     quantity,
		LineSubtotal: p.Price * float64(quantity),
	})
}

// AddFreeformItem adds an ad hoc line with no catalog backing.
func (c *Cart) AddFreeformItem(name string, price float64, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: item name is required", shared.ErrValidation)
	}
	if price <= 0 {
		return fmt.Errorf("%w: item price must be positive", shared.ErrValidation)
	}
	if quantity < 1 {
		return fmt.Errorf("%w: item quantity must be at least 1", shared.ErrValidation)
	}
	c.Lines = append(c.Lines, Line{
		ProductID:    nil,
		Name:         strings.TrimSpace(name),
		UnitPrice:    price,
		Quantity:     quantity,
		LineSubtotal: price * float64(quantity),
	})
	return nil
}

// UpdateQuantity changes the quantity of a line. Quantities below 1 are
// rejected rather than removing the line.
func (c *Cart) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.Lines) {
		return fmt.Errorf("%w: no cart line at index %d", shared.ErrNotFound, index)
	}
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", shared.ErrValidation)
	}
	c.Lines[index].Quantity = quantity
	c.Lines[index].LineSubtotal = c.Lines[index].UnitPrice * float64(quantity)
	return nil
}

// RemoveLine removes a line unconditionally.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.Lines) {
		return fmt.Errorf("%w: no cart line at index %d", shared.ErrNotFound, index)
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return nil
}

// SetDiscountPercent sets the cart discount, clamped to [0, 100].
func (c *Cart) SetDiscountPercent(percent float64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	c.DiscountPercent = percent
}

// Subtotal is the sum of all line subtotals.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, line := range c.Lines {
		sum += line.LineSubtotal
	}
	return sum
}

// DiscountAmount is the absolute discount.
func (c *Cart) DiscountAmount() float64 {
	return c.Subtotal() * c.DiscountPercent / 100
}

// Total is the amount due, never negative.
func (c *Cart) Total() float64 {
	total := c.Subtotal() - c.DiscountAmount()
	if total < 0 {
		return 0
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Reset returns the cart to its initial state after a confirmed sale.
func (c *Cart) Reset() {
	*c = *NewCart()
}
