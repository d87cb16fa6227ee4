// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/sebacontegrand/recetasjanet/internal/adapter/postgres"
	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	existsSQL = `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`

	getByIDSQL = `SELECT id, name, slug FROM categories WHERE id = $1`

	listSQL = `SELECT id, name, slug FROM categories ORDER BY name, id`

	insertIfAbsentSQL = `
INSERT INTO categories (id, name, slug)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING`
)

type row struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

func (r row) toDomain() domain.Category {
	return domain.Category{ID: r.ID, Name: r.Name, Slug: r.Slug}
}

// Exists reports whether a category with the given id is stored.
func (r *Repo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, id).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "category", id)
	}
	return exists, nil
}

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	c := dst.toDomain()
	return &c, nil
}

// List returns every category ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL); err != nil {
		return nil, fmt.Errorf("list categories: %w", postgres.MapError(err, "category", "*"))
	}

	out := make([]domain.Category, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// InsertIfAbsent stores c unless a category with the same id, name or slug
// already exists. Reports whether a row was written.
func (r *Repo) InsertIfAbsent(ctx context.Context, c domain.Category) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertIfAbsentSQL, c.ID, c.Name, c.Slug)
	if err != nil {
		return false, postgres.MapError(err, "category", c.ID)
	}
	return tag.RowsAffected() > 0, nil
}
