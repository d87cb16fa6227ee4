package seedimport

import (
	"strings"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
	"github.com/sebacontegrand/recetasjanet/internal/service/recipe"
)

// MapCategory converts a seed category. The slug is derived from the name.
func MapCategory(c CategoryDoc) domain.Category {
	name := strings.TrimSpace(c.Name)
	return domain.Category{ID: strings.TrimSpace(c.ID), Name: name, Slug: domain.CategorySlug(name)}
}

// MapTag converts a seed tag, slugged the same way as tags typed in a form.
func MapTag(t TagDoc) domain.Tag {
	name := strings.TrimSpace(t.Name)
	return domain.Tag{ID: strings.TrimSpace(t.ID), Name: name, Slug: domain.Slugify(name)}
}

// MapRecipe converts a validated seed recipe into an ImportedRecipe.
//
// Ingredient sections are flattened in section-then-item order and
// numbered from 1; each item is prefixed with "[Section] " unless the
// section has no name. Steps keep their order field (position + 1 when
// absent). Zero yields and times are stored as absent.
func MapRecipe(r RecipeDoc) recipe.ImportedRecipe {
	rec := domain.Recipe{
		ID:          strings.TrimSpace(r.ID),
		Slug:        strings.TrimSpace(r.Slug),
		Title:       strings.TrimSpace(r.Title),
		Description: trimOrNil(r.Summary),
		IsPublished: r.Status == "published",
		CategoryID:  trimOrNil(r.CategoryID),
		Difficulty:  domain.DifficultyMedium,
	}
	if r.Yield != nil {
		rec.Portions = r.Yield.Value.Ptr()
	}
	if r.Times != nil {
		rec.PrepTime = r.Times.PrepMinutes.Ptr()
		rec.CookTime = r.Times.BakeMinutesMin.Ptr()
	}
	if len(r.Tips) > 0 {
		notes := strings.Join(r.Tips, "\n")
		rec.Notes = &notes
	}

	var children domain.RecipeChildren
	order := 1
	for _, sec := range r.IngredientSections {
		section := strings.TrimSpace(sec.Name)
		for _, item := range sec.Items {
			name := strings.TrimSpace(item.Name)
			if section != "" {
				name = "[" + section + "] " + name
			}
			children.Ingredients = append(children.Ingredients, domain.Ingredient{
				Order:    order,
				Item:     name,
				Quantity: item.Qty.Ptr(),
				Unit:     item.Unit.Ptr(),
				Note:     item.Note.Ptr(),
			})
			order++
		}
	}

	for i, s := range r.Steps {
		stepOrder := i + 1
		if s.Order != nil {
			stepOrder = *s.Order
		}
		children.Steps = append(children.Steps, domain.Step{
			Order: stepOrder,
			Text:  strings.TrimSpace(s.Text),
			Timer: s.TimerMinutes.Ptr(),
		})
	}

	tagIDs := make([]string, 0, len(r.TagIDs))
	seen := make(map[string]struct{}, len(r.TagIDs))
	for _, id := range r.TagIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		tagIDs = append(tagIDs, id)
	}

	return recipe.ImportedRecipe{Recipe: rec, Children: children, TagIDs: tagIDs}
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
