package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lagranja/vetstore/internal/app"
	"github.com/lagranja/vetstore/internal/auth"
	"github.com/lagranja/vetstore/internal/banners"
	"github.com/lagranja/vetstore/internal/catalog"
	"github.com/lagranja/vetstore/internal/dashboard"
	"github.com/lagranja/vetstore/internal/expenses"
	"github.com/lagranja/vetstore/internal/platform/cache"
	"github.com/lagranja/vetstore/internal/platform/db"
	"github.com/lagranja/vetstore/internal/pos"
	"github.com/lagranja/vetstore/internal/ratelimit"
	"github.com/lagranja/vetstore/internal/sales"
	"github.com/lagranja/vetstore/internal/shared"
	"github.com/lagranja/vetstore/internal/users"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "vetstore_session", cfg.SessionTTL, cfg.IsProduction())

	limiter := ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow)
	go limiter.Run(ctx, 5*time.Minute)

	dashCache := dashboard.NewCache(redisClient, cfg.DashboardCacheTTL)

	authService := auth.NewService(auth.NewRepository(pool))
	usersService := users.NewService(users.NewRepository(pool))
	catalogService := catalog.NewService(catalog.NewRepository(pool))
	bannersService := banners.NewService(banners.NewRepository(pool))
	salesService := sales.NewService(sales.NewRepository(pool), dashCache)
	expensesService := expenses.NewService(expenses.NewRepository(pool), dashCache)
	posService := pos.NewService(catalogService, salesService)
	dashboardService := dashboard.NewService(dashboard.NewRepository(pool), dashCache)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		SessionManager:   sessionManager,
		RateLimiter:      limiter,
		AuthHandler:      auth.NewHandler(logger, authService),
		UsersHandler:     users.NewHandler(logger, usersService),
		CatalogHandler:   catalog.NewHandler(logger, catalogService),
		BannersHandler:   banners.NewHandler(logger, bannersService),
		SalesHandler:     sales.NewHandler(logger, salesService, cfg.WeekStartsOnMonday),
		ExpensesHandler:  expenses.NewHandler(logger, expensesService, cfg.WeekStartsOnMonday),
		POSHandler:       pos.NewHandler(logger, posService),
		DashboardHandler: dashboard.NewHandler(logger, dashboardService, cfg.WeekStartsOnMonday),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.Any("error", err))
	}
}
