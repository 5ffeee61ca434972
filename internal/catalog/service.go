package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/lagranja/vetstore/internal/shared"
)

const featuredLimit = 6

// Input carries the writable fields of a product.
type Input struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	Type        string  `json:"type" validate:"required,oneof=PRODUCT SERVICE"`
	IsActive    bool    `json:"is_active"`
	IsFeatured  bool    `json:"is_featured"`
}

// Service implements catalog business rules: validation, slug assignment and
// defaulted placeholder images.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every catalog entry, newest first.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// Active returns storefront-visible entries, featured first.
func (s *Service) Active(ctx context.Context) ([]Product, error) {
	return s.repo.ListActive(ctx)
}

// Featured returns the highlighted entries for the landing page.
func (s *Service) Featured(ctx context.Context) ([]Product, error) {
	return s.repo.ListFeatured(ctx, featuredLimit)
}

// Get returns one entry by id.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.Get(ctx, id)
}

// GetBySlug returns one entry by its unique slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create validates input, derives a unique slug and persists the product.
func (s *Service) Create(ctx context.Context, in Input) (*Product, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	slug, err := UniqueSlug(ctx, in.Name, s.repo.SlugExists)
	if err != nil {
		return nil, err
	}

	p := Product{
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Type:        in.Type,
		IsActive:    in.IsActive,
		IsFeatured:  in.IsFeatured,
	}
	if p.ImageURL == "" {
		p.ImageURL = placeholderImage(p.Name)
	}
	return s.repo.Create(ctx, p)
}

// Update validates input and persists changes. The slug only changes when the
// name does, and the product's own slug never counts as a collision.
func (s *Service) Update(ctx context.Context, id string, in Input) (*Product, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := existing.Slug
	if strings.TrimSpace(in.Name) != existing.Name {
		slug, err = UniqueSlug(ctx, in.Name, func(ctx context.Context, candidate string) (bool, error) {
			if candidate == existing.Slug {
				return false, nil
			}
			return s.repo.SlugExists(ctx, candidate)
		})
		if err != nil {
			return nil, err
		}
	}

	updated := Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Type:        in.Type,
		IsActive:    in.IsActive,
		IsFeatured:  in.IsFeatured,
	}
	if updated.ImageURL == "" {
		updated.ImageURL = existing.ImageURL
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	updated.CreatedAt = existing.CreatedAt
	return &updated, nil
}

// Delete removes a catalog entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateInput(in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	if in.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", shared.ErrValidation)
	}
	if in.Type != TypeProduct && in.Type != TypeService {
		return fmt.Errorf("%w: type must be PRODUCT or SERVICE", shared.ErrValidation)
	}
	return nil
}

func placeholderImage(name string) string {
	return "https://placehold.co/600x400/e5e7eb/64748b?text=" + url.QueryEscape(name)
}
