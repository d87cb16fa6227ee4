// Command migrate applies the embedded goose migrations to the configured
// database.
//
// Flags:
//
//	--dir  one of up, down, status (default up)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/sebacontegrand/recetasjanet/internal/adapter/postgres"
	"github.com/sebacontegrand/recetasjanet/internal/app"
	"github.com/sebacontegrand/recetasjanet/internal/config"
)

func main() {
	dir := flag.String("dir", "up", "migration direction: up, down or status")
	flag.Parse()

	cfg, err := config.LoadStore()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, *dir, logger); err != nil {
		logger.Error("migrate failed", slog.String("dir", *dir), slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StoreConfig, dir string, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := postgres.OpenSQL(pool)
	defer db.Close()

	provider, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}

	switch dir {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			logger.Info("applied", slog.String("migration", r.Source.Path), slog.Duration("took", r.Duration))
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("rolled back", slog.String("migration", r.Source.Path))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("status",
				slog.Int64("version", s.Source.Version),
				slog.String("migration", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}
	default:
		return fmt.Errorf("unknown -dir %q (want up, down or status)", dir)
	}
	return nil
}
