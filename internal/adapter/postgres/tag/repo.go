// Package tag implements the Tag repository using PostgreSQL.
// Tags are shared by recipes and resolved by slug.
package tag

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/sebacontegrand/recetasjanet/internal/adapter/postgres"
	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	listSQL = `SELECT id, name, slug FROM tags ORDER BY name, id`

	getBySlugsSQL = `SELECT id, name, slug FROM tags WHERE slug = ANY($1::text[])`

	insertIfAbsentSQL = `
INSERT INTO tags (id, name, slug)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING`
)

type row struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

func (r row) toDomain() domain.Tag {
	return domain.Tag{ID: r.ID, Name: r.Name, Slug: r.Slug}
}

// List returns every tag ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL); err != nil {
		return nil, fmt.Errorf("list tags: %w", postgres.MapError(err, "tag", "*"))
	}

	out := make([]domain.Tag, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// InsertIfAbsent stores t unless a tag with the same id, name or slug
// already exists. Reports whether a row was written.
func (r *Repo) InsertIfAbsent(ctx context.Context, t domain.Tag) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertIfAbsentSQL, t.ID, t.Name, t.Slug)
	if err != nil {
		return false, postgres.MapError(err, "tag", t.ID)
	}
	return tag.RowsAffected() > 0, nil
}

// EnsureByNames returns one tag per distinct slug among names, creating the
// missing ones. Names are deduplicated by slug and the first spelling wins;
// names whose slug is empty are ignored. The result follows input order.
func (r *Repo) EnsureByNames(ctx context.Context, names []string) ([]domain.Tag, error) {
	wanted := make([]domain.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		slug := domain.Slugify(name)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		wanted = append(wanted, domain.Tag{ID: uuid.NewString(), Name: name, Slug: slug})
	}
	if len(wanted) == 0 {
		return []domain.Tag{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, t := range wanted {
		batch.Queue(insertIfAbsentSQL, t.ID, t.Name, t.Slug)
	}
	if err := sendBatchExec(ctx, q, batch); err != nil {
		return nil, postgres.MapError(err, "tag", "batch")
	}

	slugs := make([]string, len(wanted))
	for i, t := range wanted {
		slugs[i] = t.Slug
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, getBySlugsSQL, slugs); err != nil {
		return nil, postgres.MapError(err, "tag", "by-slug")
	}

	bySlug := make(map[string]domain.Tag, len(rows))
	for _, rw := range rows {
		bySlug[rw.Slug] = rw.toDomain()
	}

	out := make([]domain.Tag, 0, len(wanted))
	for _, t := range wanted {
		stored, ok := bySlug[t.Slug]
		if !ok {
			// A concurrent writer took the name with a different slug.
			return nil, fmt.Errorf("tag %q: %w", t.Name, domain.ErrConflict)
		}
		out = append(out, stored)
	}
	return out, nil
}

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
