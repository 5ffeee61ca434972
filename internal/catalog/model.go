package catalog

import "time"

// Product types: physical goods the clinic sells and services it performs.
const (
	TypeProduct = "PRODUCT"
	TypeService = "SERVICE"
)

// Product represents a catalog entry shown on the storefront and sold
// through the point of sale.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	Type        string    `json:"type"`
	IsActive    bool      `json:"is_active"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
