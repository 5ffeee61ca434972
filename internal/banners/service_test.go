package banners

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagranja/vetstore/internal/shared"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestIsVisible(t *testing.T) {
	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	cases := []struct {
		name   string
		banner Banner
		want   bool
	}{
		{"inactive is hidden even inside window", Banner{IsActive: false, StartsAt: timePtr(yesterday), EndsAt: timePtr(tomorrow)}, false},
		{"active with no window", Banner{IsActive: true}, true},
		{"active inside window", Banner{IsActive: true, StartsAt: timePtr(yesterday), EndsAt: timePtr(tomorrow)}, true},
		{"not started yet", Banner{IsActive: true, StartsAt: timePtr(tomorrow)}, false},
		{"already ended", Banner{IsActive: true, EndsAt: timePtr(yesterday)}, false},
		{"open ended start only", Banner{IsActive: true, StartsAt: timePtr(yesterday)}, true},
		{"open ended end only", Banner{IsActive: true, EndsAt: timePtr(tomorrow)}, true},
		{"boundary instants count as visible", Banner{IsActive: true, StartsAt: timePtr(now), EndsAt: timePtr(now)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsVisible(tc.banner, now))
		})
	}
}

type fakeRepository struct {
	banners []Banner
}

func (f *fakeRepository) List(ctx context.Context) ([]Banner, error) {
	return append([]Banner(nil), f.banners...), nil
}

func (f *fakeRepository) Get(ctx context.Context, id string) (*Banner, error) {
	for _, b := range f.banners {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeRepository) Create(ctx context.Context, b Banner) (*Banner, error) {
	if b.ID == "" {
		b.ID = "b-new"
	}
	f.banners = append(f.banners, b)
	cp := b
	return &cp, nil
}

func (f *fakeRepository) Update(ctx context.Context, b Banner) error {
	for i := range f.banners {
		if f.banners[i].ID == b.ID {
			f.banners[i] = b
			return nil
		}
	}
	return shared.ErrNotFound
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	for i := range f.banners {
		if f.banners[i].ID == id {
			f.banners = append(f.banners[:i], f.banners[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

func TestServiceActiveFiltersByVisibility(t *testing.T) {
	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepository{banners: []Banner{
		{ID: "b1", Title: "Siempre", IsActive: true},
		{ID: "b2", Title: "Expirado", IsActive: true, EndsAt: timePtr(now.AddDate(0, 0, -1))},
		{ID: "b3", Title: "Futuro", IsActive: true, StartsAt: timePtr(now.AddDate(0, 0, 1))},
		{ID: "b4", Title: "Apagado", IsActive: false},
	}}

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	visible, err := svc.Active(context.Background())
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "b1", visible[0].ID)
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(&fakeRepository{})
	ctx := context.Background()
	start := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -2)

	cases := []struct {
		name string
		in   Input
	}{
		{"missing title", Input{ImageURL: "https://cdn.example.com/b.jpg"}},
		{"missing image", Input{Title: "Promo"}},
		{"window ends before it starts", Input{Title: "Promo", ImageURL: "https://cdn.example.com/b.jpg", StartsAt: &start, EndsAt: &end}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, shared.ErrValidation)
		})
	}
}

func TestServiceUpdatePreservesCreatedAt(t *testing.T) {
	created := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepository{banners: []Banner{{ID: "b1", Title: "Promo", ImageURL: "https://cdn.example.com/b.jpg", CreatedAt: created}}}
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), "b1", Input{Title: "Promo Nueva", ImageURL: "https://cdn.example.com/b2.jpg", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "Promo Nueva", updated.Title)
	assert.Equal(t, created, updated.CreatedAt)
}
