package banners

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lagranja/vetstore/internal/shared"
)

// Input carries the writable fields of a banner.
type Input struct {
	Title      string     `json:"title" validate:"required"`
	Subtitle   string     `json:"subtitle"`
	ImageURL   string     `json:"image_url" validate:"required,url"`
	ButtonText string     `json:"button_text"`
	LinkURL    string     `json:"link_url"`
	Order      int        `json:"order"`
	IsActive   bool       `json:"is_active"`
	StartsAt   *time.Time `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
}

// Service implements banner business rules.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns all banners in display order.
func (s *Service) List(ctx context.Context) ([]Banner, error) {
	return s.repo.List(ctx)
}

// Active returns the banners currently visible on the landing page. The
// repository returns them in display order; visibility is decided here.
func (s *Service) Active(ctx context.Context) ([]Banner, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	visible := make([]Banner, 0, len(all))
	for _, b := range all {
		if IsVisible(b, now) {
			visible = append(visible, b)
		}
	}
	return visible, nil
}

// Get returns one banner by id.
func (s *Service) Get(ctx context.Context, id string) (*Banner, error) {
	return s.repo.Get(ctx, id)
}

// Create validates input and persists the banner.
func (s *Service) Create(ctx context.Context, in Input) (*Banner, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, fromInput(in))
}

// Update validates input and persists changes.
func (s *Service) Update(ctx context.Context, id string, in Input) (*Banner, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	b := fromInput(in)
	b.ID = id
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	b.CreatedAt = existing.CreatedAt
	return &b, nil
}

// Delete removes a banner.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateInput(in Input) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", shared.ErrValidation)
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return fmt.Errorf("%w: image URL is required", shared.ErrValidation)
	}
	if in.StartsAt != nil && in.EndsAt != nil && in.EndsAt.Before(*in.StartsAt) {
		return fmt.Errorf("%w: window ends before it starts", shared.ErrValidation)
	}
	return nil
}

func fromInput(in Input) Banner {
	return Banner{
		Title:      strings.TrimSpace(in.Title),
		Subtitle:   in.Subtitle,
		ImageURL:   in.ImageURL,
		ButtonText: in.ButtonText,
		LinkURL:    in.LinkURL,
		Order:      in.Order,
		IsActive:   in.IsActive,
		StartsAt:   in.StartsAt,
		EndsAt:     in.EndsAt,
	}
}
