package seedimport

import (
	"fmt"

	"github.com/sebacontegrand/recetasjanet/internal/service/recipe"
)

// Document is the seed file. Nil top-level lists mean the key was
// absent or null, which makes the document malformed.
type Document struct {
	Categories *[]CategoryDoc `json:"categories"`
	Tags       *[]TagDoc      `json:"tags"`
	Recipes    *[]RecipeDoc   `json:"recipes"`
}

type CategoryDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TagDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RecipeDoc struct {
	ID                 string       `json:"id"`
	Slug               string       `json:"slug"`
	Title              string       `json:"title"`
	Summary            *string      `json:"summary"`
	Status             string       `json:"status"`
	CategoryID         *string      `json:"category_id"`
	TagIDs             []string     `json:"tag_ids"`
	Yield              *YieldDoc    `json:"yield"`
	Times              *TimesDoc    `json:"times"`
	Tips               []string     `json:"tips"`
	IngredientSections []SectionDoc `json:"ingredient_sections"`
	Steps              []StepDoc    `json:"steps"`
}

type YieldDoc struct {
	Value recipe.FlexInt `json:"value"`
}

type TimesDoc struct {
	PrepMinutes    recipe.FlexInt `json:"prep_minutes"`
	BakeMinutesMin recipe.FlexInt `json:"bake_minutes_min"`
}

type SectionDoc struct {
	Name  string    `json:"name"`
	Items []ItemDoc `json:"items"`
}

type ItemDoc struct {
	Name string            `json:"name"`
	Qty  recipe.FlexString `json:"qty"`
	Unit recipe.FlexString `json:"unit"`
	Note recipe.FlexString `json:"note"`
}

// Order is kept as given, zero included; a missing order falls back to
// the step's 1-based position.
type StepDoc struct {
	Order        *int           `json:"order"`
	Text         string         `json:"text"`
	TimerMinutes recipe.FlexInt `json:"timer_minutes"`
}

// SkipError records a recipe left out of the import. Index is the
// zero-based position in the recipes list.
type SkipError struct {
	Index  int
	ID     string
	Slug   string
	Reason string
	Err    error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("recipe #%d (id=%q slug=%q) skipped: %s", e.Index, e.ID, e.Slug, e.Reason)
}

func (e *SkipError) Unwrap() error { return e.Err }

// Report holds import statistics.
type Report struct {
	DryRun             bool
	CategoriesCreated  int
	CategoriesExisting int
	TagsCreated        int
	TagsExisting       int
	RecipesCreated     int
	RecipesExisting    int
	RecipesValid       int // dry run only: recipes that would be written
	Skipped            []*SkipError
}
