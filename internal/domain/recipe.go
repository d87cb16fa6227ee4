package domain

import "time"

// Difficulty is the perceived effort of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Fácil"
	DifficultyMedium Difficulty = "Media"
	DifficultyHard   Difficulty = "Difícil"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty returns the matching difficulty, or DifficultyMedium
// when s is empty or not one of the known values.
func ParseDifficulty(s string) Difficulty {
	d := Difficulty(s)
	if d.IsValid() {
		return d
	}
	return DifficultyMedium
}

// MediaType is the kind of asset a Media row points to.
type MediaType string

const MediaTypeImage MediaType = "IMAGE"

func (t MediaType) IsValid() bool { return t == MediaTypeImage }

// Category groups recipes. Name and slug are unique.
type Category struct {
	ID   string
	Name string
	Slug string
}

// Tag is a free label shared by any number of recipes.
type Tag struct {
	ID   string
	Name string
	Slug string
}

// Recipe is the root row of the recipe aggregate.
type Recipe struct {
	ID          string
	Slug        string
	Title       string
	Description *string
	Story       *string
	Notes       *string
	PrepTime    *int
	CookTime    *int
	Portions    *int
	Difficulty  Difficulty
	IsPublished bool
	CategoryID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Ingredient is one line of a recipe's ingredient list.
// Item may carry a bracketed section label, e.g. "[Salsa] tomate".
type Ingredient struct {
	ID       string
	RecipeID string
	Order    int
	Item     string
	Quantity *string
	Unit     *string
	Note     *string
}

// Step is one instruction of a recipe. Timer is in minutes.
type Step struct {
	ID       string
	RecipeID string
	Order    int
	Text     string
	Timer    *int

	Media []Media
}

// Media is an opaque asset URL owned by exactly one recipe or one step.
type Media struct {
	ID       string
	URL      string
	Type     MediaType
	Alt      *string
	Position int
	RecipeID *string
	StepID   *string
}

// RecipeChildren is the exclusively owned part of the aggregate,
// always written as a whole.
type RecipeChildren struct {
	Ingredients []Ingredient
	Steps       []Step
	Media       []Media
}

// RecipeDetail is a recipe with every collection attached in display order.
type RecipeDetail struct {
	Recipe
	Category    *Category
	Tags        []Tag
	Ingredients []Ingredient
	Steps       []Step
	Media       []Media
}

// MainImage returns the first recipe-level media URL, if any.
func (d *RecipeDetail) MainImage() *string {
	if len(d.Media) == 0 {
		return nil
	}
	url := d.Media[0].URL
	return &url
}

// RecipeSummary is the list projection of a recipe.
type RecipeSummary struct {
	ID          string
	Slug        string
	Title       string
	Description *string
	PrepTime    *int
	CookTime    *int
	Portions    *int
	Difficulty  Difficulty
	IsPublished bool
	Category    *Category
	Tags        []string
	ImageURL    *string
	CreatedAt   time.Time
}

// RecipeFilter narrows the published listing. Zero Limit means no limit.
type RecipeFilter struct {
	Query  string
	Limit  int
	Offset int
}
