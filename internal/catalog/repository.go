package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lagranja/vetstore/internal/shared"
)

// Repository persists catalog entries.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	ListActive(ctx context.Context) ([]Product, error)
	ListFeatured(ctx context.Context, limit int) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed Repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const productColumns = `id, name, slug, description, price, image_url, type, is_active, is_featured, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
}

func (r *repository) ListActive(ctx context.Context) ([]Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM products WHERE is_active ORDER BY is_featured DESC, created_at DESC`)
}

func (r *repository) ListFeatured(ctx context.Context, limit int) ([]Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM products WHERE is_active AND is_featured ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *repository) Get(ctx context.Context, id string) (*Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	return scanProduct(row)
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("catalog: slug exists: %w", err)
	}
	return exists, nil
}

func (r *repository) Create(ctx context.Context, p Product) (*Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.ImageURL, p.Type, p.IsActive, p.IsFeatured, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, wrapWriteErr("create product", err)
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p Product) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET name = $2, slug = $3, description = $4, price = $5, image_url = $6, type = $7, is_active = $8, is_featured = $9, updated_at = $10 WHERE id = $1`,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.ImageURL, p.Type, p.IsActive, p.IsFeatured, time.Now())
	if err != nil {
		return wrapWriteErr("update product", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) query(ctx context.Context, sql string, args ...any) ([]Product, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog: %v", shared.ErrDataFetch, err)
	}
	defer rows.Close()

	var list []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.ImageURL, &p.Type, &p.IsActive, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: catalog scan: %v", shared.ErrDataFetch, err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	if err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.ImageURL, &p.Type, &p.IsActive, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("%w: catalog scan: %v", shared.ErrDataFetch, err)
	}
	return &p, nil
}

func wrapWriteErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: slug already in use", shared.ErrValidation)
	}
	return fmt.Errorf("%w: %s: %v", shared.ErrDataWrite, op, err)
}
