package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagranja/vetstore/internal/shared"
)

type fakeRepository struct {
	sales      []SaleRecord
	expenses   []ExpenseRecord
	salesErr   error
	expenseErr error
	calls      int
}

func (f *fakeRepository) SalesInRange(ctx context.Context, rng shared.Range) ([]SaleRecord, error) {
	f.calls++
	return f.sales, f.salesErr
}

func (f *fakeRepository) ExpensesInRange(ctx context.Context, rng shared.Range) ([]ExpenseRecord, error) {
	return f.expenses, f.expenseErr
}

func testRange() shared.Range {
	return shared.Range{
		From: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
	}
}

func TestServiceSummary(t *testing.T) {
	repo := &fakeRepository{
		sales: []SaleRecord{
			{Date: time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC), Total: 100000, PaymentMethod: "CASH"},
			{Date: time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC), Total: 50000, PaymentMethod: "CARD"},
		},
		expenses: []ExpenseRecord{
			{Date: time.Date(2025, time.March, 2, 8, 0, 0, 0, time.UTC), Amount: 200000, Category: "Arriendo"},
		},
	}
	svc := NewService(repo, nil)

	summary, err := svc.Summary(context.Background(), shared.PeriodMonth, testRange())
	require.NoError(t, err)
	assert.Equal(t, shared.PeriodMonth, summary.Period)
	assert.Equal(t, float64(150000), summary.TotalSales)
	assert.Equal(t, float64(75000), summary.AvgTicket)
	assert.Equal(t, float64(200000), summary.TotalExpenses)
	// Profit stays negative when expenses exceed sales.
	assert.Equal(t, float64(-50000), summary.Profit)
	require.Len(t, summary.Daily, 2)
	assert.Equal(t, DailyPoint{Date: "2025-03-01", Sales: 100000, Expenses: 0}, summary.Daily[0])
	assert.Equal(t, DailyPoint{Date: "2025-03-02", Sales: 50000, Expenses: 200000}, summary.Daily[1])
}

func TestServiceSummaryFetchFailure(t *testing.T) {
	repo := &fakeRepository{expenseErr: shared.ErrDataFetch}
	svc := NewService(repo, nil)

	_, err := svc.Summary(context.Background(), shared.PeriodToday, testRange())
	assert.ErrorIs(t, err, shared.ErrDataFetch)
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute)
}

func TestServiceSummaryCaches(t *testing.T) {
	repo := &fakeRepository{
		sales: []SaleRecord{{Date: time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC), Total: 100000, PaymentMethod: "CASH"}},
	}
	svc := NewService(repo, newTestCache(t))
	ctx := context.Background()

	first, err := svc.Summary(ctx, shared.PeriodMonth, testRange())
	require.NoError(t, err)
	second, err := svc.Summary(ctx, shared.PeriodMonth, testRange())
	require.NoError(t, err)

	assert.Equal(t, first.TotalSales, second.TotalSales)
	assert.Equal(t, 1, repo.calls, "second read must come from cache")
}

func TestServiceSummaryBumpInvalidates(t *testing.T) {
	repo := &fakeRepository{}
	cache := newTestCache(t)
	svc := NewService(repo, cache)
	ctx := context.Background()

	_, err := svc.Summary(ctx, shared.PeriodMonth, testRange())
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	require.NoError(t, cache.Bump(ctx))
	_, err = svc.Summary(ctx, shared.PeriodMonth, testRange())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls, "bump must force a reload")
}

func TestCacheNilDegradesToLoader(t *testing.T) {
	var c *Cache
	var loaded bool
	var out Summary
	err := c.FetchJSON(context.Background(), "k", &out, func(ctx context.Context) (any, error) {
		loaded = true
		return Summary{Profit: 42}, nil
	})
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, float64(42), out.Profit)
}
