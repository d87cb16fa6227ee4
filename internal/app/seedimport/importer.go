// Package seedimport loads a JSON seed document of categories, tags and
// recipes into the store. Categories and tags are keyed by id, recipes by
// slug; rows that already exist are left untouched, so re-running an
// import is a no-op.
package seedimport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
	"github.com/sebacontegrand/recetasjanet/internal/service/recipe"
)

// CategoryStore inserts categories that are not stored yet.
type CategoryStore interface {
	InsertIfAbsent(ctx context.Context, c domain.Category) (bool, error)
}

// TagStore inserts tags that are not stored yet.
type TagStore interface {
	InsertIfAbsent(ctx context.Context, t domain.Tag) (bool, error)
}

// RecipeImporter writes one mapped recipe unless its slug exists.
type RecipeImporter interface {
	ImportRecipe(ctx context.Context, imported recipe.ImportedRecipe) (bool, error)
}

// Deps groups the stores an import writes to.
type Deps struct {
	Categories CategoryStore
	Tags       TagStore
	Recipes    RecipeImporter
}

// Run decodes doc in full, then imports categories, tags and recipes in
// that order. A malformed document aborts with ErrMalformedDocument before
// any write; a bad or failing recipe is recorded in Report.Skipped and the
// rest of the batch continues. Category and tag store failures abort.
func Run(ctx context.Context, cfg *Config, doc io.Reader, deps Deps, log *slog.Logger) (Report, error) {
	report := Report{DryRun: cfg.DryRun}

	if cfg.MaxDocBytes > 0 {
		doc = io.LimitReader(doc, cfg.MaxDocBytes)
	}

	var parsed Document
	dec := json.NewDecoder(doc)
	if err := dec.Decode(&parsed); err != nil {
		return report, fmt.Errorf("%w: decode: %v", ErrMalformedDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return report, fmt.Errorf("%w: trailing data after document", ErrMalformedDocument)
	}
	if err := ValidateDocument(parsed); err != nil {
		return report, err
	}

	if cfg.DryRun {
		for i, r := range *parsed.Recipes {
			if err := ValidateRecipe(r); err != nil {
				report.Skipped = append(report.Skipped, skip(i, r, err))
				continue
			}
			report.RecipesValid++
		}
		logReport(log, report)
		return report, nil
	}

	for _, c := range *parsed.Categories {
		created, err := deps.Categories.InsertIfAbsent(ctx, MapCategory(c))
		if err != nil {
			return report, fmt.Errorf("import category %s: %w", c.ID, err)
		}
		if created {
			report.CategoriesCreated++
		} else {
			report.CategoriesExisting++
		}
	}

	for _, t := range *parsed.Tags {
		created, err := deps.Tags.InsertIfAbsent(ctx, MapTag(t))
		if err != nil {
			return report, fmt.Errorf("import tag %s: %w", t.ID, err)
		}
		if created {
			report.TagsCreated++
		} else {
			report.TagsExisting++
		}
	}

	for i, r := range *parsed.Recipes {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if err := ValidateRecipe(r); err != nil {
			report.Skipped = append(report.Skipped, skip(i, r, err))
			log.Warn("skip recipe", slog.Int("index", i), slog.String("slug", r.Slug), slog.String("error", err.Error()))
			continue
		}

		created, err := deps.Recipes.ImportRecipe(ctx, MapRecipe(r))
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return report, err
			}
			report.Skipped = append(report.Skipped, skip(i, r, err))
			log.Error("import recipe", slog.Int("index", i), slog.String("slug", r.Slug), slog.String("error", err.Error()))
			continue
		}
		if created {
			report.RecipesCreated++
		} else {
			report.RecipesExisting++
		}
	}

	logReport(log, report)
	return report, nil
}

func skip(i int, r RecipeDoc, err error) *SkipError {
	return &SkipError{Index: i, ID: r.ID, Slug: r.Slug, Reason: err.Error(), Err: err}
}

func logReport(log *slog.Logger, r Report) {
	log.Info("seed-import complete",
		slog.Bool("dry_run", r.DryRun),
		slog.Int("categories_created", r.CategoriesCreated),
		slog.Int("categories_existing", r.CategoriesExisting),
		slog.Int("tags_created", r.TagsCreated),
		slog.Int("tags_existing", r.TagsExisting),
		slog.Int("recipes_created", r.RecipesCreated),
		slog.Int("recipes_existing", r.RecipesExisting),
		slog.Int("recipes_valid", r.RecipesValid),
		slog.Int("skipped", len(r.Skipped)),
	)
}
