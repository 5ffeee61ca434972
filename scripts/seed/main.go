// Seed provisions the schema, the two back-office accounts and a sample
// catalog. This is the only user-creation path besides the SUPER_ADMIN API.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lagranja/vetstore/internal/app"
	"github.com/lagranja/vetstore/internal/catalog"
	"github.com/lagranja/vetstore/internal/platform/db"
	"github.com/lagranja/vetstore/internal/shared"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	slug        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	price       NUMERIC(12,2) NOT NULL CHECK (price > 0),
	image_url   TEXT NOT NULL DEFAULT '',
	type        TEXT NOT NULL CHECK (type IN ('PRODUCT', 'SERVICE')),
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	is_featured BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS banners (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	subtitle    TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL,
	button_text TEXT NOT NULL DEFAULT '',
	link_url    TEXT NOT NULL DEFAULT '',
	"order"     INTEGER NOT NULL DEFAULT 0,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	starts_at   TIMESTAMPTZ,
	ends_at     TIMESTAMPTZ,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sales (
	id               TEXT PRIMARY KEY,
	date             TIMESTAMPTZ NOT NULL,
	subtotal         NUMERIC(12,2) NOT NULL,
	discount_percent NUMERIC(5,2) NOT NULL DEFAULT 0 CHECK (discount_percent BETWEEN 0 AND 100),
	total            NUMERIC(12,2) NOT NULL,
	payment_method   TEXT NOT NULL CHECK (payment_method IN ('CASH', 'TRANSFER', 'CARD', 'OTHER')),
	customer_name    TEXT NOT NULL DEFAULT '',
	notes            TEXT NOT NULL DEFAULT '',
	created_by_id    TEXT NOT NULL REFERENCES users (id),
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS sales_date_idx ON sales (date);

CREATE TABLE IF NOT EXISTS sale_items (
	id                  TEXT PRIMARY KEY,
	sale_id             TEXT NOT NULL REFERENCES sales (id) ON DELETE CASCADE,
	product_id          TEXT REFERENCES products (id) ON DELETE SET NULL,
	name_snapshot       TEXT NOT NULL,
	unit_price_snapshot NUMERIC(12,2) NOT NULL,
	quantity            INTEGER NOT NULL CHECK (quantity > 0),
	subtotal            NUMERIC(12,2) NOT NULL
);
CREATE INDEX IF NOT EXISTS sale_items_sale_idx ON sale_items (sale_id);

CREATE TABLE IF NOT EXISTS expenses (
	id             TEXT PRIMARY KEY,
	date           TIMESTAMPTZ NOT NULL,
	amount         NUMERIC(12,2) NOT NULL CHECK (amount > 0),
	category       TEXT NOT NULL,
	payment_method TEXT,
	notes          TEXT NOT NULL DEFAULT '',
	created_by_id  TEXT NOT NULL REFERENCES users (id),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS expenses_date_idx ON expenses (date);
`

type seedUser struct {
	email    string
	password string
	role     string
}

type seedProduct struct {
	name        string
	description string
	price       float64
	ptype       string
	featured    bool
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	cfg, err := app.LoadConfig()
	if err != nil {
		logger.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Error("apply schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("schema applied")

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme-admin"
	}

	seedUsers := []seedUser{
		{email: "admin@veterinaria.com", password: adminPassword, role: shared.RoleSuperAdmin},
		{email: "admin@gmail.com", password: adminPassword, role: shared.RoleAdmin},
	}
	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("hash password", slog.Any("error", err))
			os.Exit(1)
		}
		now := time.Now()
		_, err = pool.Exec(ctx,
			`INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $5)
			 ON CONFLICT (email) DO NOTHING`,
			uuid.NewString(), u.email, string(hash), u.role, now)
		if err != nil {
			logger.Error("seed user", slog.String("email", u.email), slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("user seeded", slog.String("email", u.email), slog.String("role", u.role))
	}

	seedProducts := []seedProduct{
		{"Consulta Veterinaria", "Consulta general con veterinario", 250.00, catalog.TypeService, true},
		{"Vacuna Triple Felina", "Vacuna para gatos contra panleucopenia, calicivirus y rinotraqueitis", 350.00, catalog.TypeService, true},
		{"Vacuna Antirrábica", "Vacuna antirrábica para perros y gatos", 200.00, catalog.TypeService, false},
		{"Desparasitación", "Desparasitación interna", 150.00, catalog.TypeService, false},
		{"Alimento Premium Perro 2kg", "Alimento balanceado para perro adulto", 180.00, catalog.TypeProduct, true},
		{"Arena para Gato 5kg", "Arena aglomerante", 95.00, catalog.TypeProduct, false},
	}
	for _, p := range seedProducts {
		now := time.Now()
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, slug, description, price, image_url, type, is_active, is_featured, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, '', $6, TRUE, $7, $8, $8)
			 ON CONFLICT (slug) DO NOTHING`,
			uuid.NewString(), p.name, catalog.Slugify(p.name), p.description, p.price, p.ptype, p.featured, now)
		if err != nil {
			logger.Error("seed product", slog.String("name", p.name), slog.Any("error", err))
			os.Exit(1)
		}
	}
	logger.Info("catalog seeded", slog.Int("products", len(seedProducts)))
}
