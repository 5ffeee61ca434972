package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lagranja/vetstore/internal/shared"
)

// Summary is the full dashboard payload for one period.
type Summary struct {
	Period        shared.Period `json:"period"`
	Range         shared.Range  `json:"range"`
	SalesStats
	ExpensesStats
	Profit float64      `json:"profit"`
	Daily  []DailyPoint `json:"daily"`
}

// Service coordinates record fetching, reduction and the cache layer.
type Service struct {
	repo  Repository
	cache *Cache
}

// NewService wires a Repository with a Cache helper. cache may be nil.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Summary computes the aggregates for a resolved range. Sales and expenses
// are fetched concurrently; if either fetch fails the whole aggregation
// fails with no partial result.
func (s *Service) Summary(ctx context.Context, period shared.Period, rng shared.Range) (Summary, error) {
	loader := func(ctx context.Context) (any, error) {
		var (
			saleRecords    []SaleRecord
			expenseRecords []ExpenseRecord
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			saleRecords, err = s.repo.SalesInRange(gctx, rng)
			return err
		})
		g.Go(func() error {
			var err error
			expenseRecords, err = s.repo.ExpensesInRange(gctx, rng)
			return err
		})
		if err := g.Wait(); err != nil {
			return Summary{}, err
		}

		summary := Summary{
			Period:        period,
			Range:         rng,
			SalesStats:    AggregateSales(saleRecords),
			ExpensesStats: AggregateExpenses(expenseRecords),
			Daily:         MergeDaily(SalesByDay(saleRecords), ExpensesByDay(expenseRecords)),
		}
		// Profit may be negative; it is never clamped.
		summary.Profit = summary.TotalSales - summary.TotalExpenses
		return summary, nil
	}

	if s.cache == nil {
		value, err := loader(ctx)
		if err != nil {
			return Summary{}, err
		}
		return value.(Summary), nil
	}

	key, err := s.cache.BuildKey(ctx, "dashboard", "summary", string(period))
	if err != nil {
		return Summary{}, err
	}
	var summary Summary
	if err := s.cache.FetchJSON(ctx, key, &summary, loader); err != nil {
		return Summary{}, err
	}
	return summary, nil
}
