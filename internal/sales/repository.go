package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lagranja/vetstore/internal/platform/db"
	"github.com/lagranja/vetstore/internal/shared"
)

// Repository persists sales. Create writes the sale and its items in one
// transaction.
type Repository interface {
	Create(ctx context.Context, sale Sale) error
	List(ctx context.Context, rng *shared.Range) ([]Sale, error)
	Get(ctx context.Context, id string) (*Sale, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed Repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const saleColumns = `id, date, subtotal, discount_percent, total, payment_method, customer_name, notes, created_by_id, created_at`

func (r *repository) Create(ctx context.Context, sale Sale) error {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO sales (`+saleColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			sale.ID, sale.Date, sale.Subtotal, sale.DiscountPercent, sale.Total,
			string(sale.PaymentMethod), sale.CustomerName, sale.Notes, sale.CreatedByID, sale.CreatedAt)
		if err != nil {
			return err
		}
		for _, item := range sale.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO sale_items (id, sale_id, product_id, name_snapshot, unit_price_snapshot, quantity, subtotal) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				item.ID, sale.ID, item.ProductID, item.NameSnapshot, item.UnitPriceSnapshot, item.Quantity, item.Subtotal)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: create sale: %v", shared.ErrDataWrite, err)
	}
	return nil
}

func (r *repository) List(ctx context.Context, rng *shared.Range) ([]Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales`
	args := []any{}
	if rng != nil {
		query += ` WHERE date >= $1 AND date <= $2`
		args = append(args, rng.From, rng.To)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: sales: %v", shared.ErrDataFetch, err)
	}
	defer rows.Close()

	var list []Sale
	byID := map[string]int{}
	for rows.Next() {
		var s Sale
		if err := scanSale(rows, &s); err != nil {
			return nil, err
		}
		byID[s.ID] = len(list)
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: sales: %v", shared.ErrDataFetch, err)
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, 0, len(list))
	for id := range byID {
		ids = append(ids, id)
	}
	itemRows, err := r.pool.Query(ctx,
		`SELECT id, sale_id, product_id, name_snapshot, unit_price_snapshot, quantity, subtotal FROM sale_items WHERE sale_id = ANY($1) ORDER BY id`,
		ids)
	if err != nil {
		return nil, fmt.Errorf("%w: sale items: %v", shared.ErrDataFetch, err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it SaleItem
		if err := itemRows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.NameSnapshot, &it.UnitPriceSnapshot, &it.Quantity, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("%w: sale items scan: %v", shared.ErrDataFetch, err)
		}
		if idx, ok := byID[it.SaleID]; ok {
			list[idx].Items = append(list[idx].Items, it)
		}
	}
	return list, itemRows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (*Sale, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	var s Sale
	if err := scanSale(row, &s); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, sale_id, product_id, name_snapshot, unit_price_snapshot, quantity, subtotal FROM sale_items WHERE sale_id = $1 ORDER BY id`,
		id)
	if err != nil {
		return nil, fmt.Errorf("%w: sale items: %v", shared.ErrDataFetch, err)
	}
	defer rows.Close()
	for rows.Next() {
		var it SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.NameSnapshot, &it.UnitPriceSnapshot, &it.Quantity, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("%w: sale items scan: %v", shared.ErrDataFetch, err)
		}
		s.Items = append(s.Items, it)
	}
	return &s, rows.Err()
}

func (r *repository) Delete(ctx context.Context, id string) error {
	// sale_items rows go with the sale via ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete sale: %v", shared.ErrDataWrite, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanSale(row pgx.Row, s *Sale) error {
	var method string
	err := row.Scan(&s.ID, &s.Date, &s.Subtotal, &s.DiscountPercent, &s.Total, &method, &s.CustomerName, &s.Notes, &s.CreatedByID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shared.ErrNotFound
		}
		return fmt.Errorf("%w: sales scan: %v", shared.ErrDataFetch, err)
	}
	s.PaymentMethod = PaymentMethod(method)
	return nil
}

// NewSaleID mints an identifier for a sale or sale item.
func NewSaleID() string {
	return uuid.NewString()
}
