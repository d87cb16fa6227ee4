package seedimport

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDocument aborts an import before any write.
var ErrMalformedDocument = errors.New("malformed seed document")

// ValidateDocument checks the top-level lists and the category and tag
// records every recipe may depend on.
func ValidateDocument(doc Document) error {
	var missing []string
	if doc.Categories == nil {
		missing = append(missing, "categories")
	}
	if doc.Tags == nil {
		missing = append(missing, "tags")
	}
	if doc.Recipes == nil {
		missing = append(missing, "recipes")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMalformedDocument, strings.Join(missing, ", "))
	}

	for i, c := range *doc.Categories {
		if strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: category #%d needs id and name", ErrMalformedDocument, i)
		}
	}
	for i, t := range *doc.Tags {
		if strings.TrimSpace(t.ID) == "" || strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: tag #%d needs id and name", ErrMalformedDocument, i)
		}
	}
	return nil
}

// ValidateRecipe checks that a recipe record can be stored.
func ValidateRecipe(r RecipeDoc) error {
	if strings.TrimSpace(r.Slug) == "" {
		return fmt.Errorf("slug is empty")
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is empty")
	}
	for si, sec := range r.IngredientSections {
		for ii, item := range sec.Items {
			if strings.TrimSpace(item.Name) == "" {
				return fmt.Errorf("ingredient %d of section %d has empty name", ii, si)
			}
		}
	}
	for i, s := range r.Steps {
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("step %d has empty text", i)
		}
		if s.Order != nil && *s.Order < 0 {
			return fmt.Errorf("step %d has negative order %d", i, *s.Order)
		}
	}
	return nil
}
