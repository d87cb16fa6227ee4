package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

// CreateRecipe validates input and stores a new recipe with its children
// and tags in one transaction. The slug is derived from the title.
func (s *Service) CreateRecipe(ctx context.Context, input RecipeInput) (*domain.Recipe, error) {
	return s.writeRecipe(ctx, "", input)
}

// UpdateRecipe overwrites the recipe's scalars, category and tags, and
// replaces its ingredients, steps and media as a whole. The slug is kept.
func (s *Service) UpdateRecipe(ctx context.Context, id string, input RecipeInput) (*domain.Recipe, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.writeRecipe(ctx, id, input)
}

// writeRecipe is the reconciliation shared by create (empty id) and update.
func (s *Service) writeRecipe(ctx context.Context, id string, input RecipeInput) (*domain.Recipe, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	categoryID := trimOrNil(input.CategoryID)

	if categoryID != nil {
		exists, err := s.categories.Exists(ctx, *categoryID)
		if err != nil {
			return nil, fmt.Errorf("check category: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("category %s: %w", *categoryID, domain.ErrReference)
		}
	}

	tagNames := SplitTags(input.Tags)

	now := s.now()
	rec := domain.Recipe{
		ID:          id,
		Title:       title,
		Description: trimOrNil(input.Description),
		Story:       trimOrNil(input.Story),
		Notes:       trimOrNil(input.Notes),
		PrepTime:    input.PrepTime,
		CookTime:    input.CookTime,
		Portions:    input.Portions,
		Difficulty:  domain.ParseDifficulty(string(input.Difficulty)),
		IsPublished: input.IsPublished,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	children := buildChildren(title, input)

	var stored *domain.Recipe
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		tags, err := s.tags.EnsureByNames(txCtx, tagNames)
		if err != nil {
			return fmt.Errorf("resolve tags: %w", err)
		}

		if id == "" {
			rec.ID = uuid.NewString()
			rec.Slug = domain.Slugify(title)
			stored, err = s.recipes.Create(txCtx, rec)
			if err != nil {
				return fmt.Errorf("create recipe: %w", err)
			}
		} else {
			stored, err = s.recipes.Update(txCtx, rec)
			if err != nil {
				return fmt.Errorf("update recipe: %w", err)
			}
		}

		if err := s.recipes.ReplaceChildren(txCtx, stored.ID, children); err != nil {
			return fmt.Errorf("replace children: %w", err)
		}

		tagIDs := make([]string, len(tags))
		for i, t := range tags {
			tagIDs[i] = t.ID
		}
		if err := s.recipes.SetTags(txCtx, stored.ID, tagIDs); err != nil {
			return fmt.Errorf("set tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := "recipe created"
	if id != "" {
		action = "recipe updated"
	}
	s.log.InfoContext(ctx, action,
		slog.String("recipe_id", stored.ID),
		slog.String("slug", stored.Slug),
		slog.Int("ingredients", len(children.Ingredients)),
		slog.Int("steps", len(children.Steps)),
		slog.Int("tags", len(tagNames)),
	)

	return stored, nil
}

// buildChildren numbers ingredients and steps from 1 in submission order.
// The main image becomes recipe media; each step image becomes step media.
func buildChildren(title string, input RecipeInput) domain.RecipeChildren {
	children := domain.RecipeChildren{
		Ingredients: make([]domain.Ingredient, 0, len(input.Ingredients)),
		Steps:       make([]domain.Step, 0, len(input.Steps)),
	}

	for i, ing := range input.Ingredients {
		children.Ingredients = append(children.Ingredients, domain.Ingredient{
			Order:    i + 1,
			Item:     strings.TrimSpace(ing.Item),
			Quantity: trimOrNil(ing.Quantity),
			Unit:     trimOrNil(ing.Unit),
			Note:     trimOrNil(ing.Note),
		})
	}

	for i, st := range input.Steps {
		step := domain.Step{
			Order: i + 1,
			Text:  strings.TrimSpace(st.Text),
			Timer: st.Timer,
		}
		if url := trimOrNil(st.MediaURL); url != nil {
			step.Media = []domain.Media{{
				URL:  *url,
				Type: domain.MediaTypeImage,
				Alt:  ptr(fmt.Sprintf("Paso %d de %s", i+1, title)),
			}}
		}
		children.Steps = append(children.Steps, step)
	}

	if url := trimOrNil(input.MainImageURL); url != nil {
		children.Media = []domain.Media{{
			URL:  *url,
			Type: domain.MediaTypeImage,
			Alt:  ptr(title),
		}}
	}

	return children
}

// DeleteRecipe removes a recipe. Its children go with it; tags and the
// category stay.
func (s *Service) DeleteRecipe(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}

	s.log.InfoContext(ctx, "recipe deleted", slog.String("recipe_id", id))
	return nil
}

// ImportRecipe stores an imported recipe unless its slug is already taken.
// Children and tag links are written only for a newly created row, so a
// re-run leaves existing recipes untouched.
func (s *Service) ImportRecipe(ctx context.Context, imported ImportedRecipe) (bool, error) {
	if err := imported.Validate(); err != nil {
		return false, err
	}

	rec := imported.Recipe
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Difficulty = domain.ParseDifficulty(string(rec.Difficulty))
	if rec.CreatedAt.IsZero() {
		now := s.now()
		rec.CreatedAt, rec.UpdatedAt = now, now
	}

	var created bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.recipes.CreateIfAbsent(txCtx, rec)
		if err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		if !created {
			return nil
		}
		if err := s.recipes.ReplaceChildren(txCtx, rec.ID, imported.Children); err != nil {
			return fmt.Errorf("replace children: %w", err)
		}
		if err := s.recipes.SetTags(txCtx, rec.ID, imported.TagIDs); err != nil {
			return fmt.Errorf("set tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}
