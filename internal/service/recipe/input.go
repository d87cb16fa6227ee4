package recipe

import (
	"fmt"
	"strings"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

// RecipeInput holds the parameters for creating or updating a recipe.
// Ingredients and steps are stored in slice order.
type RecipeInput struct {
	Title        string
	Description  *string
	Story        *string
	Notes        *string
	PrepTime     *int
	CookTime     *int
	Portions     *int
	Difficulty   domain.Difficulty // empty or unknown = Media
	IsPublished  bool
	CategoryID   *string
	Tags         string // comma-separated tag names
	MainImageURL *string
	Ingredients  []IngredientInput
	Steps        []StepInput
}

// IngredientInput is one ingredient line of a RecipeInput.
type IngredientInput struct {
	Quantity *string
	Unit     *string
	Item     string
	Note     *string
}

// StepInput is one step of a RecipeInput. Timer is in minutes.
type StepInput struct {
	Text     string
	Timer    *int
	MediaURL *string
}

// Validate checks all fields and collects all errors.
func (i RecipeInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	switch {
	case title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case domain.Slugify(title) == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "must contain letters or digits"})
	}

	errs = appendNonNegative(errs, "prepTime", i.PrepTime)
	errs = appendNonNegative(errs, "cookTime", i.CookTime)
	errs = appendNonNegative(errs, "portions", i.Portions)

	for _, name := range SplitTags(i.Tags) {
		if domain.Slugify(name) == "" {
			errs = append(errs, domain.FieldError{
				Field:   "tags",
				Message: fmt.Sprintf("%q must contain letters or digits", name),
			})
		}
	}

	for idx, ing := range i.Ingredients {
		if strings.TrimSpace(ing.Item) == "" {
			errs = append(errs, domain.FieldError{Field: fieldIndex("ingredients", idx, "item"), Message: "required"})
		}
	}

	for idx, st := range i.Steps {
		if strings.TrimSpace(st.Text) == "" {
			errs = append(errs, domain.FieldError{Field: fieldIndex("steps", idx, "text"), Message: "required"})
		}
		errs = appendNonNegative(errs, fieldIndex("steps", idx, "timer"), st.Timer)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SplitTags splits a comma-separated tag field, trimming whitespace and
// dropping empty entries.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ImportedRecipe is a recipe already mapped from an import document.
// IDs are kept verbatim; TagIDs reference existing tags.
type ImportedRecipe struct {
	Recipe   domain.Recipe
	Children domain.RecipeChildren
	TagIDs   []string
}

// Validate checks the fields the store cannot default.
func (i ImportedRecipe) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Recipe.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	}
	if strings.TrimSpace(i.Recipe.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendNonNegative(errs []domain.FieldError, field string, v *int) []domain.FieldError {
	if v != nil && *v < 0 {
		errs = append(errs, domain.FieldError{Field: field, Message: "must not be negative"})
	}
	return errs
}

func fieldIndex(list string, idx int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, idx, field)
}
