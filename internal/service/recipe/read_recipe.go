package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

// MaxListLimit caps a single page of the recipe listings.
const MaxListLimit = 100

// ListPublished returns published recipes newest first, optionally
// filtered by a substring of title or description.
func (s *Service) ListPublished(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeSummary, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	list, err := s.recipes.ListPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list published recipes: %w", err)
	}
	return list, nil
}

// ListAll returns every recipe, drafts included, newest first.
func (s *Service) ListAll(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeSummary, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	list, err := s.recipes.ListAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return list, nil
}

// GetBySlug returns the published recipe with the exact slug and all of
// its collections. Drafts are reported as domain.ErrNotFound.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.RecipeDetail, error) {
	if slug == "" {
		return nil, fmt.Errorf("recipe %q: %w", slug, domain.ErrNotFound)
	}

	var detail *domain.RecipeDetail
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		rec, err := s.recipes.GetBySlug(txCtx, slug)
		if err != nil {
			return fmt.Errorf("get recipe: %w", err)
		}
		if !rec.IsPublished {
			return fmt.Errorf("recipe %s: %w", slug, domain.ErrNotFound)
		}
		detail, err = s.loadDetail(txCtx, rec)
		return err
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// GetByID returns a recipe and all of its collections, drafts included.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.RecipeDetail, error) {
	var detail *domain.RecipeDetail
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		rec, err := s.recipes.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get recipe: %w", err)
		}
		detail, err = s.loadDetail(txCtx, rec)
		return err
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// loadDetail fetches the recipe's collections one after another; ctx
// carries the snapshot transaction, which serves one query at a time.
func (s *Service) loadDetail(ctx context.Context, rec *domain.Recipe) (*domain.RecipeDetail, error) {
	detail := &domain.RecipeDetail{Recipe: *rec}

	if rec.CategoryID != nil {
		cat, err := s.categories.GetByID(ctx, *rec.CategoryID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// FK is ON DELETE SET NULL; treat a vanished category as none.
		case err != nil:
			return nil, fmt.Errorf("load category: %w", err)
		default:
			detail.Category = cat
		}
	}

	var err error
	if detail.Tags, err = s.recipes.Tags(ctx, rec.ID); err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	if detail.Ingredients, err = s.recipes.Ingredients(ctx, rec.ID); err != nil {
		return nil, fmt.Errorf("load ingredients: %w", err)
	}
	if detail.Steps, err = s.recipes.Steps(ctx, rec.ID); err != nil {
		return nil, fmt.Errorf("load steps: %w", err)
	}
	if detail.Media, err = s.recipes.Media(ctx, rec.ID); err != nil {
		return nil, fmt.Errorf("load media: %w", err)
	}
	return detail, nil
}

// ListCategories returns every category ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// ListTags returns every tag ordered by name.
func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func validateFilter(f domain.RecipeFilter) error {
	var errs []domain.FieldError
	if f.Limit < 0 || f.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxListLimit)})
	}
	if f.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
