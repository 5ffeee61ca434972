package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagranja/vetstore/internal/shared"
)

type fakeRepository struct {
	expenses map[string]*Expense
	nextID   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{expenses: make(map[string]*Expense)}
}

func (f *fakeRepository) List(ctx context.Context, rng *shared.Range) ([]Expense, error) {
	var out []Expense
	for _, e := range f.expenses {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeRepository) Get(ctx context.Context, id string) (*Expense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeRepository) Create(ctx context.Context, e Expense) (*Expense, error) {
	f.nextID++
	e.ID = "e-" + string(rune('0'+f.nextID))
	f.expenses[e.ID] = &e
	cp := e
	return &cp, nil
}

func (f *fakeRepository) Update(ctx context.Context, e Expense) error {
	if _, ok := f.expenses[e.ID]; !ok {
		return shared.ErrNotFound
	}
	f.expenses[e.ID] = &e
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.expenses[id]; !ok {
		return shared.ErrNotFound
	}
	delete(f.expenses, id)
	return nil
}

type countingInvalidator struct {
	bumps int
}

func (c *countingInvalidator) Bump(ctx context.Context) error {
	c.bumps++
	return nil
}

func TestServiceCreate(t *testing.T) {
	repo := newFakeRepository()
	inv := &countingInvalidator{}
	svc := NewService(repo, inv)

	transfer := "TRANSFER"
	e, err := svc.Create(context.Background(), Input{
		Amount:        150000,
		Category:      "  Insumos médicos  ",
		PaymentMethod: &transfer,
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Insumos médicos", e.Category)
	assert.Equal(t, "user-1", e.CreatedByID)
	assert.False(t, e.Date.IsZero())
	assert.Equal(t, 1, inv.bumps)
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)
	ctx := context.Background()
	bad := "CHEQUE"

	cases := []struct {
		name string
		in   Input
	}{
		{"zero amount", Input{Category: "Servicios"}},
		{"negative amount", Input{Amount: -5, Category: "Servicios"}},
		{"blank category", Input{Amount: 100, Category: "  "}},
		{"bad payment method", Input{Amount: 100, Category: "Servicios", PaymentMethod: &bad}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in, "user-1")
			assert.ErrorIs(t, err, shared.ErrValidation)
		})
	}
}

func TestServiceCreateRequiresUser(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)
	_, err := svc.Create(context.Background(), Input{Amount: 100, Category: "Servicios"}, "")
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestServiceUpdate(t *testing.T) {
	repo := newFakeRepository()
	inv := &countingInvalidator{}
	svc := NewService(repo, inv)

	e, err := svc.Create(context.Background(), Input{Amount: 100, Category: "Servicios"}, "user-1")
	require.NoError(t, err)

	when := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), e.ID, Input{Amount: 250, Category: "Arriendo", Date: &when})
	require.NoError(t, err)
	assert.Equal(t, float64(250), updated.Amount)
	assert.Equal(t, "Arriendo", updated.Category)
	assert.Equal(t, when, updated.Date)
	assert.Equal(t, "user-1", updated.CreatedByID)
	assert.Equal(t, 2, inv.bumps)
}

func TestServiceUpdateUnknownID(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)
	_, err := svc.Update(context.Background(), "missing", Input{Amount: 100, Category: "Servicios"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestServiceDeleteInvalidates(t *testing.T) {
	repo := newFakeRepository()
	inv := &countingInvalidator{}
	svc := NewService(repo, inv)

	e, err := svc.Create(context.Background(), Input{Amount: 100, Category: "Servicios"}, "user-1")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), e.ID))
	assert.Equal(t, 2, inv.bumps)

	assert.ErrorIs(t, svc.Delete(context.Background(), e.ID), shared.ErrNotFound)
}

func TestSuggestedCategoriesNotEmpty(t *testing.T) {
	assert.NotEmpty(t, SuggestedCategories)
	assert.Contains(t, SuggestedCategories, "Arriendo")
}
