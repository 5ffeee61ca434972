package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagranja/vetstore/internal/shared"
)

type fakeRepository struct {
	created []Sale
	deleted []string
	err     error
}

func (f *fakeRepository) Create(ctx context.Context, sale Sale) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, sale)
	return nil
}

func (f *fakeRepository) List(ctx context.Context, rng *shared.Range) ([]Sale, error) {
	return f.created, f.err
}

func (f *fakeRepository) Get(ctx context.Context, id string) (*Sale, error) {
	for _, s := range f.created {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type countingInvalidator struct {
	bumps int
}

func (c *countingInvalidator) Bump(ctx context.Context) error {
	c.bumps++
	return nil
}

func saleInput() CreateInput {
	return CreateInput{
		PaymentMethod: PaymentCash,
		Items: []CreateItemInput{
			{NameSnapshot: "Consulta general", UnitPriceSnapshot: 50000, Quantity: 2},
			{NameSnapshot: "Desparasitante", UnitPriceSnapshot: 20000, Quantity: 1},
		},
	}
}

func TestServiceCreateRecomputesTotals(t *testing.T) {
	repo := &fakeRepository{}
	inv := &countingInvalidator{}
	svc := NewService(repo, inv)

	in := saleInput()
	in.DiscountPercent = 10

	sale, err := svc.Create(context.Background(), in, "user-1")
	require.NoError(t, err)
	assert.Equal(t, float64(120000), sale.Subtotal)
	assert.Equal(t, float64(108000), sale.Total)
	assert.Equal(t, "user-1", sale.CreatedByID)
	require.Len(t, sale.Items, 2)
	assert.Equal(t, float64(100000), sale.Items[0].Subtotal)
	assert.Equal(t, sale.ID, sale.Items[0].SaleID)
	assert.Equal(t, 1, inv.bumps)
	require.Len(t, repo.created, 1)
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(&fakeRepository{}, nil)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"no items", func(in *CreateInput) { in.Items = nil }},
		{"bad payment method", func(in *CreateInput) { in.PaymentMethod = "CHEQUE" }},
		{"discount below zero", func(in *CreateInput) { in.DiscountPercent = -1 }},
		{"discount above hundred", func(in *CreateInput) { in.DiscountPercent = 101 }},
		{"blank item name", func(in *CreateInput) { in.Items[0].NameSnapshot = " " }},
		{"free item price", func(in *CreateInput) { in.Items[0].UnitPriceSnapshot = 0 }},
		{"zero quantity", func(in *CreateInput) { in.Items[0].Quantity = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := saleInput()
			tc.mutate(&in)
			_, err := svc.Create(ctx, in, "user-1")
			assert.ErrorIs(t, err, shared.ErrValidation)
		})
	}
}

func TestServiceCreateRequiresUser(t *testing.T) {
	svc := NewService(&fakeRepository{}, nil)
	_, err := svc.Create(context.Background(), saleInput(), "")
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestServiceCreateRepositoryFailureSkipsInvalidation(t *testing.T) {
	repo := &fakeRepository{err: shared.ErrDataWrite}
	inv := &countingInvalidator{}
	svc := NewService(repo, inv)

	_, err := svc.Create(context.Background(), saleInput(), "user-1")
	require.ErrorIs(t, err, shared.ErrDataWrite)
	assert.Zero(t, inv.bumps)
}

func TestServiceDeleteInvalidates(t *testing.T) {
	repo := &fakeRepository{}
	inv := &countingInvalidator{}
	svc := NewService(repo, inv)

	require.NoError(t, svc.Delete(context.Background(), "sale-1"))
	assert.Equal(t, []string{"sale-1"}, repo.deleted)
	assert.Equal(t, 1, inv.bumps)
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentCash.Valid())
	assert.True(t, PaymentTransfer.Valid())
	assert.True(t, PaymentCard.Valid())
	assert.True(t, PaymentOther.Valid())
	assert.False(t, PaymentMethod("CHEQUE").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
