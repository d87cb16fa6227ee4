// Command import-seed loads a seed document of categories, tags and recipes
// into PostgreSQL. Rows that already exist are left untouched, so the
// command can be re-run against the same file.
//
// Flags:
//
//	--file           path to the seed JSON (overrides the import config)
//	--import-config  path to seed-import config YAML (optional; falls back to env)
//	--dry-run        validate the document without writing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/sebacontegrand/recetasjanet/internal/adapter/postgres"
	"github.com/sebacontegrand/recetasjanet/internal/adapter/postgres/category"
	recipestore "github.com/sebacontegrand/recetasjanet/internal/adapter/postgres/recipe"
	"github.com/sebacontegrand/recetasjanet/internal/adapter/postgres/tag"
	"github.com/sebacontegrand/recetasjanet/internal/app"
	"github.com/sebacontegrand/recetasjanet/internal/app/seedimport"
	"github.com/sebacontegrand/recetasjanet/internal/config"
	"github.com/sebacontegrand/recetasjanet/internal/service/recipe"
)

// Compile-time interface assertions.
var (
	_ seedimport.CategoryStore  = (*category.Repo)(nil)
	_ seedimport.TagStore       = (*tag.Repo)(nil)
	_ seedimport.RecipeImporter = (*recipe.Service)(nil)
)

func main() {
	file := flag.String("file", "", "path to seed JSON document")
	importConfigPath := flag.String("import-config", "", "path to seed-import config YAML")
	dryRun := flag.Bool("dry-run", false, "validate only, no DB writes")
	flag.Parse()

	appCfg, err := config.LoadStore()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	importCfg, err := seedimport.LoadConfig(*importConfigPath)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *file != "" {
		importCfg.File = *file
	}
	if *dryRun {
		importCfg.DryRun = true
	}

	doc, err := os.Open(importCfg.File)
	if err != nil {
		logger.Error("open seed document", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer doc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	// A dry run never writes, so it needs no database.
	var deps seedimport.Deps
	if importCfg.DryRun {
		logger.Info("dry-run mode: no DB connection, no writes")
	} else {
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		categories := category.New(pool)
		tags := tag.New(pool)
		deps = seedimport.Deps{
			Categories: categories,
			Tags:       tags,
			Recipes:    recipe.NewService(logger, recipestore.New(pool), categories, tags, postgres.NewTxManager(pool)),
		}
	}

	_, err = seedimport.Run(ctx, importCfg, doc, deps, logger)
	if err != nil {
		logger.Error("import failed", slog.String("file", importCfg.File), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
