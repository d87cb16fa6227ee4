package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/sebacontegrand/recetasjanet/internal/adapter/postgres"
	"github.com/sebacontegrand/recetasjanet/internal/adapter/postgres/category"
	recipestore "github.com/sebacontegrand/recetasjanet/internal/adapter/postgres/recipe"
	"github.com/sebacontegrand/recetasjanet/internal/adapter/postgres/tag"
	"github.com/sebacontegrand/recetasjanet/internal/auth"
	"github.com/sebacontegrand/recetasjanet/internal/cache"
	"github.com/sebacontegrand/recetasjanet/internal/config"
	"github.com/sebacontegrand/recetasjanet/internal/service/recipe"
	"github.com/sebacontegrand/recetasjanet/internal/transport/middleware"
	"github.com/sebacontegrand/recetasjanet/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and (optionally) Redis, wires services and handlers, and
// serves HTTP until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	var pages cache.Store = cache.Nop{}
	health := rest.NewHealthHandler(pool, nil, BuildVersion())
	if cfg.Redis.Enabled() {
		redisCache, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisCache.Close()
		pages = redisCache
		health = rest.NewHealthHandler(pool, redisCache, BuildVersion())
		logger.Info("page cache enabled", slog.Duration("ttl", cfg.Redis.TTL))
	}

	recipes := recipe.NewService(
		logger,
		recipestore.New(pool),
		category.New(pool),
		tag.New(pool),
		postgres.NewTxManager(pool),
	)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AdminTokenTTL)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Routes{
		Health:  health,
		Recipes: rest.NewRecipeHandler(recipes, pages, logger),
		Admin:   rest.NewAdminHandler(recipes, pages, cfg.Server.MaxFormBytes, logger),
		Public:  limiter.Limit(cfg.RateLimit.PublicPerMinute),
		AdminGuard: middleware.Chain(
			limiter.Limit(cfg.RateLimit.AdminPerMinute),
			middleware.AdminAuth(jwt, logger),
		),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}
