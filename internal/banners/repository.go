package banners

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

// Repository persists banners.
type Repository interface {
	List(ctx context.Context) ([]Banner, error)
	Get(ctx context.Context, id string) (*Banner, error)
	Create(ctx context.Context, b Banner) (*Banner, error)
	Update(ctx context.Context, b Banner) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed Repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const bannerColumns = `id, title, subtitle, image_url, button_text, link_url, "order", is_active, starts_at, ends_at, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Banner, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bannerColumns+` FROM banners ORDER BY "order" ASC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: banners: %v", shared.ErrDataFetch, err)
	}
	defer rows.Close()

	var list []Banner
	for rows.Next() {
		var b Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.Subtitle, &b.ImageURL, &b.ButtonText, &b.LinkURL, &b.Order, &b.IsActive, &b.StartsAt, &b.EndsAt, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: banners scan: %v", shared.ErrDataFetch, err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (*Banner, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id)
	var b Banner
	if err := row.Scan(&b.ID, &b.Title, &b.Subtitle, &b.ImageURL, &b.ButtonText, &b.LinkURL, &b.Order, &b.IsActive, &b.StartsAt, &b.EndsAt, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("%w: banners scan: %v", shared.ErrDataFetch, err)
	}
	return &b, nil
}

func (r *repository) Create(ctx context.Context, b Banner) (*Banner, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO banners (`+bannerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID, b.Title, b.Subtitle, b.ImageURL, b.ButtonText, b.LinkURL, b.Order, b.IsActive, b.StartsAt, b.EndsAt, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: create banner: %v", shared.ErrDataWrite, err)
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b Banner) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE banners SET title = $2, subtitle = $3, image_url = $4, button_text = $5, link_url = $6, "order" = $7, is_active = $8, starts_at = $9, ends_at = $10, updated_at = $11 WHERE id = $1`,
		b.ID, b.Title, b.Subtitle, b.ImageURL, b.ButtonText, b.LinkURL, b.Order, b.IsActive, b.StartsAt, b.EndsAt, time.Now())
	if err != nil {
		return fmt.Errorf("%w: update banner: %v", shared.ErrDataWrite, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete banner: %v", shared.ErrDataWrite, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
