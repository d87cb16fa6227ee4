package recipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/sebacontegrand/recetasjanet/internal/adapter/postgres"
	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	getByIDSQL   = `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`
	getBySlugSQL = `SELECT ` + recipeColumns + ` FROM recipes WHERE slug = $1`

	ingredientsSQL = `
SELECT id, recipe_id, "order", item, quantity, unit, note
FROM ingredients
WHERE recipe_id = $1
ORDER BY "order", seq`

	stepsSQL = `
SELECT id, recipe_id, "order", text, timer
FROM steps
WHERE recipe_id = $1
ORDER BY "order", seq`

	recipeMediaSQL = `
SELECT id, url, type, alt, position, recipe_id, step_id
FROM media
WHERE recipe_id = $1
ORDER BY position, id`

	stepMediaSQL = `
SELECT m.id, m.url, m.type, m.alt, m.position, m.recipe_id, m.step_id
FROM media m
JOIN steps s ON s.id = m.step_id
WHERE s.recipe_id = $1
ORDER BY m.position, m.id`

	tagsSQL = `
SELECT t.id, t.name, t.slug
FROM recipe_tags rt
JOIN tags t ON t.id = rt.tag_id
WHERE rt.recipe_id = $1
ORDER BY t.name, t.id`
)

// summaryColumns project a recipe card: scalars, category, tag names and
// the first recipe-level image.
var summaryColumns = []string{
	"r.id", "r.slug", "r.title", "r.description",
	"r.prep_time", "r.cook_time", "r.portions", "r.difficulty",
	"r.is_published", "r.created_at",
	"c.id AS category_id", "c.name AS category_name", "c.slug AS category_slug",
	`COALESCE((SELECT array_agg(t.name ORDER BY t.name)
	    FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
	    WHERE rt.recipe_id = r.id), '{}') AS tag_names`,
	`(SELECT m.url FROM media m WHERE m.recipe_id = r.id
	    ORDER BY m.position, m.id LIMIT 1) AS image_url`,
}

type summaryRow struct {
	ID           string    `db:"id"`
	Slug         string    `db:"slug"`
	Title        string    `db:"title"`
	Description  *string   `db:"description"`
	PrepTime     *int      `db:"prep_time"`
	CookTime     *int      `db:"cook_time"`
	Portions     *int      `db:"portions"`
	Difficulty   string    `db:"difficulty"`
	IsPublished  bool      `db:"is_published"`
	CreatedAt    time.Time `db:"created_at"`
	CategoryID   *string   `db:"category_id"`
	CategoryName *string   `db:"category_name"`
	CategorySlug *string   `db:"category_slug"`
	TagNames     []string  `db:"tag_names"`
	ImageURL     *string   `db:"image_url"`
}

func (r summaryRow) toDomain() domain.RecipeSummary {
	s := domain.RecipeSummary{
		ID:          r.ID,
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Portions:    r.Portions,
		Difficulty:  domain.Difficulty(r.Difficulty),
		IsPublished: r.IsPublished,
		Tags:        r.TagNames,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	if r.CategoryID != nil {
		s.Category = &domain.Category{ID: *r.CategoryID}
		if r.CategoryName != nil {
			s.Category.Name = *r.CategoryName
		}
		if r.CategorySlug != nil {
			s.Category.Slug = *r.CategorySlug
		}
	}
	return s
}

type ingredientRow struct {
	ID       string  `db:"id"`
	RecipeID string  `db:"recipe_id"`
	Order    int     `db:"order"`
	Item     string  `db:"item"`
	Quantity *string `db:"quantity"`
	Unit     *string `db:"unit"`
	Note     *string `db:"note"`
}

type stepRow struct {
	ID       string `db:"id"`
	RecipeID string `db:"recipe_id"`
	Order    int    `db:"order"`
	Text     string `db:"text"`
	Timer    *int   `db:"timer"`
}

type mediaRow struct {
	ID       string  `db:"id"`
	URL      string  `db:"url"`
	Type     string  `db:"type"`
	Alt      *string `db:"alt"`
	Position int     `db:"position"`
	RecipeID *string `db:"recipe_id"`
	StepID   *string `db:"step_id"`
}

func (m mediaRow) toDomain() domain.Media {
	return domain.Media{
		ID:       m.ID,
		URL:      m.URL,
		Type:     domain.MediaType(m.Type),
		Alt:      m.Alt,
		Position: m.Position,
		RecipeID: m.RecipeID,
		StepID:   m.StepID,
	}
}

type tagRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

// ListPublished returns published recipes, newest first. A non-empty
// filter.Query keeps recipes whose title or description contains it,
// case-insensitively. Zero Limit means no limit.
func (r *Repo) ListPublished(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeSummary, error) {
	return r.list(ctx, sq.Eq{"r.is_published": true}, filter)
}

// ListAll returns every recipe, drafts included, newest first.
func (r *Repo) ListAll(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeSummary, error) {
	return r.list(ctx, nil, filter)
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer, filter domain.RecipeFilter) ([]domain.RecipeSummary, error) {
	query := psql.Select(summaryColumns...).
		From("recipes r").
		LeftJoin("categories c ON c.id = r.category_id").
		OrderBy("r.created_at DESC", "r.id DESC")

	if where != nil {
		query = query.Where(where)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where(sq.Or{
			sq.ILike{"r.title": pattern},
			sq.ILike{"r.description": pattern},
		})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recipe list query: %w", err)
	}

	var rows []summaryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list recipes: %w", postgres.MapError(err, "recipe", "*"))
	}

	out := make([]domain.RecipeSummary, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// escapeLike escapes LIKE metacharacters so the query matches literally.
// Backslash is the default LIKE escape character in PostgreSQL.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ---------------------------------------------------------------------------
// Single recipe
// ---------------------------------------------------------------------------

// GetByID returns the recipe row regardless of its published state.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	var row recipeRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "recipe", id)
	}
	return row.toDomain(), nil
}

// GetBySlug returns the recipe row with the exact slug, regardless of its
// published state.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Recipe, error) {
	var row recipeRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getBySlugSQL, slug); err != nil {
		return nil, postgres.MapError(err, "recipe", slug)
	}
	return row.toDomain(), nil
}

// Ingredients returns the recipe's ingredients by order, then insertion.
func (r *Repo) Ingredients(ctx context.Context, recipeID string) ([]domain.Ingredient, error) {
	var rows []ingredientRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, ingredientsSQL, recipeID); err != nil {
		return nil, postgres.MapError(err, "recipe ingredients", recipeID)
	}

	out := make([]domain.Ingredient, len(rows))
	for i, row := range rows {
		out[i] = domain.Ingredient{
			ID:       row.ID,
			RecipeID: row.RecipeID,
			Order:    row.Order,
			Item:     row.Item,
			Quantity: row.Quantity,
			Unit:     row.Unit,
			Note:     row.Note,
		}
	}
	return out, nil
}

// Steps returns the recipe's steps by order, then insertion, each with
// its media attached.
func (r *Repo) Steps(ctx context.Context, recipeID string) ([]domain.Step, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []stepRow
	if err := pgxscan.Select(ctx, q, &rows, stepsSQL, recipeID); err != nil {
		return nil, postgres.MapError(err, "recipe steps", recipeID)
	}
	if len(rows) == 0 {
		return []domain.Step{}, nil
	}

	var media []mediaRow
	if err := pgxscan.Select(ctx, q, &media, stepMediaSQL, recipeID); err != nil {
		return nil, postgres.MapError(err, "recipe step media", recipeID)
	}

	byStep := make(map[string][]domain.Media, len(media))
	for _, m := range media {
		if m.StepID == nil {
			continue
		}
		byStep[*m.StepID] = append(byStep[*m.StepID], m.toDomain())
	}

	out := make([]domain.Step, len(rows))
	for i, row := range rows {
		stepMedia := byStep[row.ID]
		if stepMedia == nil {
			stepMedia = []domain.Media{}
		}
		out[i] = domain.Step{
			ID:       row.ID,
			RecipeID: row.RecipeID,
			Order:    row.Order,
			Text:     row.Text,
			Timer:    row.Timer,
			Media:    stepMedia,
		}
	}
	return out, nil
}

// Media returns the recipe-level media by position.
func (r *Repo) Media(ctx context.Context, recipeID string) ([]domain.Media, error) {
	var rows []mediaRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, recipeMediaSQL, recipeID); err != nil {
		return nil, postgres.MapError(err, "recipe media", recipeID)
	}

	out := make([]domain.Media, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Tags returns the tags linked to the recipe ordered by name.
func (r *Repo) Tags(ctx context.Context, recipeID string) ([]domain.Tag, error) {
	var rows []tagRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, tagsSQL, recipeID); err != nil {
		return nil, postgres.MapError(err, "recipe tags", recipeID)
	}

	out := make([]domain.Tag, len(rows))
	for i, row := range rows {
		out[i] = domain.Tag{ID: row.ID, Name: row.Name, Slug: row.Slug}
	}
	return out, nil
}
