package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and the key (id or slug) being accessed.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// Anything that is not a recognised constraint or lookup miss wraps domain.ErrStore.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %s: %w", entity, key, pgErr.ConstraintName, domain.ErrConflict)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %s: %w", entity, key, pgErr.ConstraintName, domain.ErrReference)
		case "23514", "23502": // check_violation, not_null_violation
			return fmt.Errorf("%s %s: %s: %w", entity, key, pgErr.ConstraintName, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%w: %s %s: %w", domain.ErrStore, entity, key, err)
}
