package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lagranja/vetstore/internal/shared"
)

// Repository fetches the raw records the aggregator reduces.
type Repository interface {
	SalesInRange(ctx context.Context, rng shared.Range) ([]SaleRecord, error)
	ExpensesInRange(ctx context.Context, rng shared.Range) ([]ExpenseRecord, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed Repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) SalesInRange(ctx context.Context, rng shared.Range) ([]SaleRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT date, total, payment_method FROM sales WHERE date >= $1 AND date <= $2 ORDER BY date ASC`,
		rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("%w: sales in range: %v", shared.ErrDataFetch, err)
	}
	defer rows.Close()

	var records []SaleRecord
	for rows.Next() {
		var rec SaleRecord
		if err := rows.Scan(&rec.Date, &rec.Total, &rec.PaymentMethod); err != nil {
			return nil, fmt.Errorf("%w: sales scan: %v", shared.ErrDataFetch, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: sales rows: %v", shared.ErrDataFetch, err)
	}
	return records, nil
}

func (r *repository) ExpensesInRange(ctx context.Context, rng shared.Range) ([]ExpenseRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT date, amount, category FROM expenses WHERE date >= $1 AND date <= $2 ORDER BY date ASC`,
		rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("%w: expenses in range: %v", shared.ErrDataFetch, err)
	}
	defer rows.Close()

	var records []ExpenseRecord
	for rows.Next() {
		var rec ExpenseRecord
		if err := rows.Scan(&rec.Date, &rec.Amount, &rec.Category); err != nil {
			return nil, fmt.Errorf("%w: expenses scan: %v", shared.ErrDataFetch, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: expenses rows: %v", shared.ErrDataFetch, err)
	}
	return records, nil
}
