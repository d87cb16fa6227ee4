// Package recipe implements the Recipe aggregate repository using PostgreSQL.
// The recipe row, its owned children (ingredients, steps, media) and its tag
// links are written here; callers wrap multi-step writes in TxManager.RunInTx.
package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/sebacontegrand/recetasjanet/internal/adapter/postgres"
	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new recipe repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const recipeColumns = `id, slug, title, description, story, notes, prep_time, cook_time, portions,
    difficulty, is_published, category_id, created_at, updated_at`

const createSQL = `
INSERT INTO recipes (id, slug, title, description, story, notes, prep_time, cook_time, portions,
    difficulty, is_published, category_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
RETURNING ` + recipeColumns

const createIfAbsentSQL = `
INSERT INTO recipes (id, slug, title, description, story, notes, prep_time, cook_time, portions,
    difficulty, is_published, category_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
ON CONFLICT (slug) DO NOTHING`

const updateSQL = `
UPDATE recipes SET
    title = $2, description = $3, story = $4, notes = $5,
    prep_time = $6, cook_time = $7, portions = $8,
    difficulty = $9, is_published = $10, category_id = COALESCE($11, category_id), updated_at = $12
WHERE id = $1
RETURNING ` + recipeColumns

const deleteSQL = `DELETE FROM recipes WHERE id = $1`

const deleteRecipeMediaSQL = `DELETE FROM media WHERE recipe_id = $1`

// Step media cascades with its step.
const deleteStepsSQL = `DELETE FROM steps WHERE recipe_id = $1`

const deleteIngredientsSQL = `DELETE FROM ingredients WHERE recipe_id = $1`

const insertIngredientSQL = `
INSERT INTO ingredients (id, recipe_id, "order", item, quantity, unit, note)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const insertStepSQL = `
INSERT INTO steps (id, recipe_id, "order", text, timer)
VALUES ($1, $2, $3, $4, $5)`

const insertMediaSQL = `
INSERT INTO media (id, url, type, alt, position, recipe_id, step_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const deleteTagLinksSQL = `DELETE FROM recipe_tags WHERE recipe_id = $1`

const insertTagLinksSQL = `
INSERT INTO recipe_tags (recipe_id, tag_id)
SELECT $1, t FROM unnest($2::text[]) AS t
ON CONFLICT DO NOTHING`

// ---------------------------------------------------------------------------
// Row types
// ---------------------------------------------------------------------------

type recipeRow struct {
	ID          string    `db:"id"`
	Slug        string    `db:"slug"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Story       *string   `db:"story"`
	Notes       *string   `db:"notes"`
	PrepTime    *int      `db:"prep_time"`
	CookTime    *int      `db:"cook_time"`
	Portions    *int      `db:"portions"`
	Difficulty  string    `db:"difficulty"`
	IsPublished bool      `db:"is_published"`
	CategoryID  *string   `db:"category_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r recipeRow) toDomain() *domain.Recipe {
	return &domain.Recipe{
		ID:          r.ID,
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Story:       r.Story,
		Notes:       r.Notes,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Portions:    r.Portions,
		Difficulty:  domain.Difficulty(r.Difficulty),
		IsPublished: r.IsPublished,
		CategoryID:  r.CategoryID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func recipeArgs(rec domain.Recipe) []any {
	return []any{
		rec.ID, rec.Slug, rec.Title, rec.Description, rec.Story, rec.Notes,
		rec.PrepTime, rec.CookTime, rec.Portions,
		string(rec.Difficulty), rec.IsPublished, rec.CategoryID, rec.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Recipe row writes
// ---------------------------------------------------------------------------

// Create inserts the recipe row and returns it as stored.
// A duplicate slug or id maps to domain.ErrConflict; an unknown category
// maps to domain.ErrReference.
func (r *Repo) Create(ctx context.Context, rec domain.Recipe) (*domain.Recipe, error) {
	var row recipeRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL, recipeArgs(rec)...); err != nil {
		return nil, postgres.MapError(err, "recipe", rec.Slug)
	}
	return row.toDomain(), nil
}

// CreateIfAbsent inserts the recipe row unless a recipe with the same slug
// exists. Reports whether a row was written; an existing slug is left as is.
func (r *Repo) CreateIfAbsent(ctx context.Context, rec domain.Recipe) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createIfAbsentSQL, recipeArgs(rec)...)
	if err != nil {
		return false, postgres.MapError(err, "recipe", rec.Slug)
	}
	return tag.RowsAffected() > 0, nil
}

// Update overwrites the scalar fields of an existing recipe. The category
// is replaced only when rec.CategoryID is set; slug and created_at are
// never changed. Returns domain.ErrNotFound if no
// recipe has rec.ID.
func (r *Repo) Update(ctx context.Context, rec domain.Recipe) (*domain.Recipe, error) {
	var row recipeRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateSQL,
		rec.ID, rec.Title, rec.Description, rec.Story, rec.Notes,
		rec.PrepTime, rec.CookTime, rec.Portions,
		string(rec.Difficulty), rec.IsPublished, rec.CategoryID, rec.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}
	return row.toDomain(), nil
}

// Delete removes a recipe; its children and tag links cascade.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "recipe", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Children and tag links
// ---------------------------------------------------------------------------

// ReplaceChildren deletes every ingredient, step and media row of the recipe
// and inserts the given collections in one batch. Rows without an ID get a
// fresh one; step media are linked to their step and recipe media to the
// recipe regardless of the owner fields on the input.
// Must run inside a transaction to be atomic.
func (r *Repo) ReplaceChildren(ctx context.Context, recipeID string, children domain.RecipeChildren) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	batch.Queue(deleteRecipeMediaSQL, recipeID)
	batch.Queue(deleteStepsSQL, recipeID)
	batch.Queue(deleteIngredientsSQL, recipeID)

	for _, ing := range children.Ingredients {
		batch.Queue(insertIngredientSQL,
			idOrNew(ing.ID), recipeID, ing.Order, ing.Item, ing.Quantity, ing.Unit, ing.Note,
		)
	}

	var stepMedia []domain.Media
	for _, st := range children.Steps {
		stepID := idOrNew(st.ID)
		batch.Queue(insertStepSQL, stepID, recipeID, st.Order, st.Text, st.Timer)
		for _, m := range st.Media {
			m.StepID, m.RecipeID = &stepID, nil
			stepMedia = append(stepMedia, m)
		}
	}

	for _, m := range children.Media {
		m.RecipeID, m.StepID = &recipeID, nil
		queueMedia(batch, m)
	}
	for _, m := range stepMedia {
		queueMedia(batch, m)
	}

	if err := sendBatchExec(ctx, q, batch); err != nil {
		return postgres.MapError(err, "recipe children", recipeID)
	}
	return nil
}

// SetTags replaces the tag links of a recipe with tagIDs.
// Duplicate ids are collapsed; an unknown tag id maps to domain.ErrReference.
func (r *Repo) SetTags(ctx context.Context, recipeID string, tagIDs []string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteTagLinksSQL, recipeID); err != nil {
		return postgres.MapError(err, "recipe tags", recipeID)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	if _, err := q.Exec(ctx, insertTagLinksSQL, recipeID, tagIDs); err != nil {
		return postgres.MapError(err, "recipe tags", recipeID)
	}
	return nil
}

func queueMedia(batch *pgx.Batch, m domain.Media) {
	typ := m.Type
	if typ == "" {
		typ = domain.MediaTypeImage
	}
	batch.Queue(insertMediaSQL, idOrNew(m.ID), m.URL, string(typ), m.Alt, m.Position, m.RecipeID, m.StepID)
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// sendBatchExec sends a pgx.Batch and checks every queued statement.
func sendBatchExec(ctx context.Context, q postgres.Querier, batch *pgx.Batch) error {
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch exec: %w", err)
		}
	}
	return nil
}
