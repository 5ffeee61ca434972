package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lagranja/vetstore/internal/auth"
	"github.com/lagranja/vetstore/internal/banners"
	"github.com/lagranja/vetstore/internal/catalog"
	"github.com/lagranja/vetstore/internal/dashboard"
	"github.com/lagranja/vetstore/internal/expenses"
	"github.com/lagranja/vetstore/internal/pos"
	"github.com/lagranja/vetstore/internal/ratelimit"
	"github.com/lagranja/vetstore/internal/sales"
	"github.com/lagranja/vetstore/internal/shared"
	"github.com/lagranja/vetstore/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	SessionManager   *shared.SessionManager
	RateLimiter      *ratelimit.Limiter
	AuthHandler      *auth.Handler
	UsersHandler     *users.Handler
	CatalogHandler   *catalog.Handler
	BannersHandler   *banners.Handler
	SalesHandler     *sales.Handler
	ExpensesHandler  *expenses.Handler
	POSHandler       *pos.Handler
	DashboardHandler *dashboard.Handler
}

// NewRouter constructs the chi.Router for the storefront and back-office.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Public storefront.
	r.Route("/api/products", params.CatalogHandler.MountPublicRoutes)
	r.Route("/api/banners", params.BannersHandler.MountPublicRoutes)
	r.Route("/api/auth", params.AuthHandler.MountRoutes)

	// Authenticated back-office. Mutations carry the fine-grained limiter on
	// top of the coarse global one.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(ratelimit.Middleware(params.RateLimiter))

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(shared.RoleAdmin))
			r.Route("/products", params.CatalogHandler.MountAdminRoutes)
			r.Route("/banners", params.BannersHandler.MountAdminRoutes)
			r.Route("/sales", params.SalesHandler.MountRoutes)
			r.Route("/expenses", params.ExpensesHandler.MountRoutes)
			r.Route("/pos", params.POSHandler.MountRoutes)
			r.Route("/dashboard", params.DashboardHandler.MountRoutes)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(shared.RoleSuperAdmin))
			r.Route("/users", params.UsersHandler.MountRoutes)
		})
	})

	return r
}
