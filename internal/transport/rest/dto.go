package rest

import (
	"time"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type tagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type recipeSummaryResponse struct {
	ID          string            `json:"id"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	PrepTime    *int              `json:"prepTime"`
	CookTime    *int              `json:"cookTime"`
	Portions    *int              `json:"portions"`
	Difficulty  string            `json:"difficulty"`
	IsPublished bool              `json:"isPublished"`
	Category    *categoryResponse `json:"category"`
	Tags        []string          `json:"tags"`
	ImageURL    *string           `json:"imageUrl"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type recipeResponse struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Story       *string   `json:"story"`
	Notes       *string   `json:"notes"`
	PrepTime    *int      `json:"prepTime"`
	CookTime    *int      `json:"cookTime"`
	Portions    *int      `json:"portions"`
	Difficulty  string    `json:"difficulty"`
	IsPublished bool      `json:"isPublished"`
	CategoryID  *string   `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type recipeDetailResponse struct {
	recipeResponse
	Category     *categoryResponse    `json:"category"`
	Tags         []tagResponse        `json:"tags"`
	Ingredients  []ingredientResponse `json:"ingredients"`
	Steps        []stepResponse       `json:"steps"`
	Media        []mediaResponse      `json:"media"`
	MainImageURL *string              `json:"mainImageUrl"`
}

type ingredientResponse struct {
	ID       string  `json:"id"`
	Order    int     `json:"order"`
	Item     string  `json:"item"`
	Quantity *string `json:"quantity"`
	Unit     *string `json:"unit"`
	Note     *string `json:"note"`
}

type stepResponse struct {
	ID    string          `json:"id"`
	Order int             `json:"order"`
	Text  string          `json:"text"`
	Timer *int            `json:"timer"`
	Media []mediaResponse `json:"media"`
}

type mediaResponse struct {
	ID       string  `json:"id"`
	URL      string  `json:"url"`
	Type     string  `json:"type"`
	Alt      *string `json:"alt"`
	Position int     `json:"position"`
}

func toCategoryResponse(c *domain.Category) *categoryResponse {
	if c == nil {
		return nil
	}
	return &categoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func toCategoryList(list []domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(list))
	for i := range list {
		out[i] = *toCategoryResponse(&list[i])
	}
	return out
}

func toTagList(list []domain.Tag) []tagResponse {
	out := make([]tagResponse, len(list))
	for i, t := range list {
		out[i] = tagResponse{ID: t.ID, Name: t.Name, Slug: t.Slug}
	}
	return out
}

func toSummaryList(list []domain.RecipeSummary) []recipeSummaryResponse {
	out := make([]recipeSummaryResponse, len(list))
	for i, s := range list {
		tags := s.Tags
		if tags == nil {
			tags = []string{}
		}
		out[i] = recipeSummaryResponse{
			ID:          s.ID,
			Slug:        s.Slug,
			Title:       s.Title,
			Description: s.Description,
			PrepTime:    s.PrepTime,
			CookTime:    s.CookTime,
			Portions:    s.Portions,
			Difficulty:  string(s.Difficulty),
			IsPublished: s.IsPublished,
			Category:    toCategoryResponse(s.Category),
			Tags:        tags,
			ImageURL:    s.ImageURL,
			CreatedAt:   s.CreatedAt,
		}
	}
	return out
}

func toRecipeResponse(r *domain.Recipe) recipeResponse {
	return recipeResponse{
		ID:          r.ID,
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Story:       r.Story,
		Notes:       r.Notes,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Portions:    r.Portions,
		Difficulty:  string(r.Difficulty),
		IsPublished: r.IsPublished,
		CategoryID:  r.CategoryID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toDetailResponse(d *domain.RecipeDetail) recipeDetailResponse {
	resp := recipeDetailResponse{
		recipeResponse: toRecipeResponse(&d.Recipe),
		Category:       toCategoryResponse(d.Category),
		Tags:           toTagList(d.Tags),
		Ingredients:    make([]ingredientResponse, len(d.Ingredients)),
		Steps:          make([]stepResponse, len(d.Steps)),
		Media:          toMediaList(d.Media),
		MainImageURL:   d.MainImage(),
	}
	for i, ing := range d.Ingredients {
		resp.Ingredients[i] = ingredientResponse{
			ID:       ing.ID,
			Order:    ing.Order,
			Item:     ing.Item,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Note:     ing.Note,
		}
	}
	for i, s := range d.Steps {
		resp.Steps[i] = stepResponse{
			ID:    s.ID,
			Order: s.Order,
			Text:  s.Text,
			Timer: s.Timer,
			Media: toMediaList(s.Media),
		}
	}
	return resp
}

func toMediaList(list []domain.Media) []mediaResponse {
	out := make([]mediaResponse, len(list))
	for i, m := range list {
		out[i] = mediaResponse{ID: m.ID, URL: m.URL, Type: string(m.Type), Alt: m.Alt, Position: m.Position}
	}
	return out
}
