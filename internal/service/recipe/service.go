// Package recipe implements the recipe aggregate's write and read
// operations: form reconciliation, import, public listing and detail.
package recipe

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

type recipeRepo interface {
	Create(ctx context.Context, rec domain.Recipe) (*domain.Recipe, error)
	CreateIfAbsent(ctx context.Context, rec domain.Recipe) (bool, error)
	Update(ctx context.Context, rec domain.Recipe) (*domain.Recipe, error)
	Delete(ctx context.Context, id string) error
	ReplaceChildren(ctx context.Context, recipeID string, children domain.RecipeChildren) error
	SetTags(ctx context.Context, recipeID string, tagIDs []string) error

	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Recipe, error)
	ListPublished(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeSummary, error)
	ListAll(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeSummary, error)
	Ingredients(ctx context.Context, recipeID string) ([]domain.Ingredient, error)
	Steps(ctx context.Context, recipeID string) ([]domain.Step, error)
	Media(ctx context.Context, recipeID string) ([]domain.Media, error)
	Tags(ctx context.Context, recipeID string) ([]domain.Tag, error)
}

type categoryRepo interface {
	Exists(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type tagRepo interface {
	EnsureByNames(ctx context.Context, names []string) ([]domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides recipe operations.
type Service struct {
	recipes    recipeRepo
	categories categoryRepo
	tags       tagRepo
	tx         txManager
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new recipe Service.
func NewService(
	log *slog.Logger,
	recipes recipeRepo,
	categories categoryRepo,
	tags tagRepo,
	tx txManager,
) *Service {
	return &Service{
		recipes:    recipes,
		categories: categories,
		tags:       tags,
		tx:         tx,
		log:        log.With("service", "recipe"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func ptr[T any](v T) *T {
	return &v
}
