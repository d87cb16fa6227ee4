package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory inserts a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	name := "Categoria " + UniqueSuffix()
	c := domain.Category{ID: uuid.NewString(), Name: name, Slug: domain.CategorySlug(name)}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.Slug,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedTag inserts a tag with a unique name.
func SeedTag(t *testing.T, pool *pgxpool.Pool) domain.Tag {
	t.Helper()

	name := "tag " + UniqueSuffix()
	tag := domain.Tag{ID: uuid.NewString(), Name: name, Slug: domain.Slugify(name)}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tags (id, name, slug) VALUES ($1, $2, $3)`,
		tag.ID, tag.Name, tag.Slug,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}
	return tag
}

// RecipeOpts tweaks the row written by SeedRecipe.
type RecipeOpts struct {
	Title       string
	Description string
	Published   bool
	CategoryID  *string
	CreatedAt   time.Time
}

// SeedRecipe inserts a bare recipe row (no children). Title defaults to a
// unique value; CreatedAt defaults to now.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, opts RecipeOpts) domain.Recipe {
	t.Helper()

	if opts.Title == "" {
		opts.Title = "Receta " + UniqueSuffix()
	}
	if opts.CreatedAt.IsZero() {
		opts.CreatedAt = time.Now().UTC()
	}
	opts.CreatedAt = opts.CreatedAt.Truncate(time.Microsecond)

	r := domain.Recipe{
		ID:          uuid.NewString(),
		Slug:        domain.Slugify(opts.Title) + "-" + UniqueSuffix(),
		Title:       opts.Title,
		Difficulty:  domain.DifficultyMedium,
		IsPublished: opts.Published,
		CategoryID:  opts.CategoryID,
		CreatedAt:   opts.CreatedAt,
		UpdatedAt:   opts.CreatedAt,
	}
	if opts.Description != "" {
		d := opts.Description
		r.Description = &d
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO recipes (id, slug, title, description, difficulty, is_published, category_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.Slug, r.Title, r.Description, string(r.Difficulty), r.IsPublished, r.CategoryID, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe: %v", err)
	}
	return r
}

// CountRows returns the number of rows in table matching the recipe id.
// table must be one of ingredients, steps, media, recipe_tags.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, recipeID string) int {
	t.Helper()

	var query string
	switch table {
	case "ingredients", "steps", "recipe_tags":
		query = `SELECT count(*) FROM ` + table + ` WHERE recipe_id = $1`
	case "media":
		query = `SELECT count(*) FROM media m
		         LEFT JOIN steps s ON s.id = m.step_id
		         WHERE m.recipe_id = $1 OR s.recipe_id = $1`
	default:
		t.Fatalf("testhelper: CountRows: unsupported table %q", table)
	}

	var n int
	if err := pool.QueryRow(context.Background(), query, recipeID).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
