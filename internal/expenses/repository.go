package expenses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lagranja/vetstore/internal/shared"
)

// Repository persists expenses.
type Repository interface {
	List(ctx context.Context, rng *shared.Range) ([]Expense, error)
	Get(ctx context.Context, id string) (*Expense, error)
	Create(ctx context.Context, e Expense) (*Expense, error)
	Update(ctx context.Context, e Expense) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed Repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const expenseColumns = `id, date, amount, category, payment_method, notes, created_by_id, created_at, updated_at`

func (r *repository) List(ctx context.Context, rng *shared.Range) ([]Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	args := []any{}
	if rng != nil {
		query += ` WHERE date >= $1 AND date <= $2`
		args = append(args, rng.From, rng.To)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: expenses: %v", shared.ErrDataFetch, err)
	}
	defer rows.Close()

	var list []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Category, &e.PaymentMethod, &e.Notes, &e.CreatedByID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: expenses scan: %v", shared.ErrDataFetch, err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (*Expense, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	var e Expense
	if err := row.Scan(&e.ID, &e.Date, &e.Amount, &e.Category, &e.PaymentMethod, &e.Notes, &e.CreatedByID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("%w: expenses scan: %v", shared.ErrDataFetch, err)
	}
	return &e, nil
}

func (r *repository) Create(ctx context.Context, e Expense) (*Expense, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO expenses (`+expenseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Date, e.Amount, e.Category, e.PaymentMethod, e.Notes, e.CreatedByID, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: create expense: %v", shared.ErrDataWrite, err)
	}
	return &e, nil
}

func (r *repository) Update(ctx context.Context, e Expense) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE expenses SET date = $2, amount = $3, category = $4, payment_method = $5, notes = $6, updated_at = $7 WHERE id = $1`,
		e.ID, e.Date, e.Amount, e.Category, e.PaymentMethod, e.Notes, time.Now())
	if err != nil {
		return fmt.Errorf("%w: update expense: %v", shared.ErrDataWrite, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete expense: %v", shared.ErrDataWrite, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
