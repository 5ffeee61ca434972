package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagranja/vetstore/internal/shared"
)

type fakeRepository struct {
	products map[string]*Product
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{products: make(map[string]*Product)}
}

func (f *fakeRepository) List(ctx context.Context) ([]Product, error) {
	var out []Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepository) ListActive(ctx context.Context) ([]Product, error) {
	var out []Product
	for _, p := range f.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListFeatured(ctx context.Context, limit int) ([]Product, error) {
	var out []Product
	for _, p := range f.products {
		if p.IsActive && p.IsFeatured && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepository) Get(ctx context.Context, id string) (*Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) Create(ctx context.Context, p Product) (*Product, error) {
	if p.ID == "" {
		p.ID = "p-" + p.Slug
	}
	f.products[p.ID] = &p
	cp := p
	return &cp, nil
}

func (f *fakeRepository) Update(ctx context.Context, p Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return shared.ErrNotFound
	}
	f.products[p.ID] = &p
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func validInput() Input {
	return Input{
		Name:     "Vacuna Triple Felina",
		Price:    85000,
		Type:     TypeProduct,
		IsActive: true,
	}
}

func TestServiceCreateAssignsSlugAndPlaceholder(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "vacuna-triple-felina", p.Slug)
	assert.Contains(t, p.ImageURL, "placehold.co")
	assert.Contains(t, p.ImageURL, "Vacuna")
}

func TestServiceCreateResolvesSlugCollision(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.Equal(t, "vacuna-triple-felina", first.Slug)

	second, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, "vacuna-triple-felina-1", second.Slug)
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"blank name", func(in *Input) { in.Name = "   " }},
		{"zero price", func(in *Input) { in.Price = 0 }},
		{"negative price", func(in *Input) { in.Price = -10 }},
		{"bad type", func(in *Input) { in.Type = "BUNDLE" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, shared.ErrValidation)
		})
	}
}

func TestServiceUpdateKeepsSlugWhenNameUnchanged(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Price = 90000
	updated, err := svc.Update(ctx, p.ID, in)
	require.NoError(t, err)

	// The slug is regenerated from the same name, and the product's own slug
	// must not count as a collision.
	assert.Equal(t, "vacuna-triple-felina", updated.Slug)
	assert.Equal(t, float64(90000), updated.Price)
}

func TestServiceUpdateRenamesSlug(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Vacuna Rabia Canina"
	updated, err := svc.Update(ctx, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "vacuna-rabia-canina", updated.Slug)
}

func TestServiceUpdateKeepsImageWhenBlank(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	in := validInput()
	in.ImageURL = "https://cdn.example.com/vacuna.jpg"
	p, err := svc.Create(ctx, in)
	require.NoError(t, err)

	in.ImageURL = ""
	updated, err := svc.Update(ctx, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/vacuna.jpg", updated.ImageURL)
}

func TestServiceUpdateUnknownID(t *testing.T) {
	svc := NewService(newFakeRepository())
	_, err := svc.Update(context.Background(), "missing", validInput())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
