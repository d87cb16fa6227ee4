package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
	"github.com/sebacontegrand/recetasjanet/internal/service/recipe"
	"github.com/sebacontegrand/recetasjanet/pkg/ctxutil"
)

type recipeAdmin interface {
	ListAll(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeSummary, error)
	GetByID(ctx context.Context, id string) (*domain.RecipeDetail, error)
	CreateRecipe(ctx context.Context, input recipe.RecipeInput) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, id string, input recipe.RecipeInput) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
}

// AdminHandler serves the authenticated recipe management endpoints.
// Every successful write drops the public page cache.
type AdminHandler struct {
	svc          recipeAdmin
	cache        pageCache
	log          *slog.Logger
	maxFormBytes int64
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc recipeAdmin, cache pageCache, maxFormBytes int64, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:          svc,
		cache:        cache,
		log:          logger.With("handler", "admin"),
		maxFormBytes: maxFormBytes,
	}
}

// List returns all recipes, drafts included.
// GET /admin/recipes?q=&limit=&offset=
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListAll(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryList(list))
}

// Get returns one recipe by id, drafts included.
// GET /admin/recipes/:id
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	detail, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDetailResponse(detail))
}

// Submit handles the recipe form. A non-empty id field updates that
// recipe; otherwise a new one is created.
// POST /admin/recipes
func (h *AdminHandler) Submit(w http.ResponseWriter, r *http.Request) {
	input, id, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	if id != "" {
		h.update(w, r, id, input)
		return
	}

	rec, err := h.svc.CreateRecipe(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.afterWrite(r, "recipe created", rec.ID)
	writeJSON(w, http.StatusCreated, toRecipeResponse(rec))
}

// Update handles the recipe form for an existing recipe.
// PUT /admin/recipes/:id
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	input, _, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	h.update(w, r, httprouter.ParamsFromContext(r.Context()).ByName("id"), input)
}

// Delete removes a recipe with its ingredients, steps and media.
// DELETE /admin/recipes/:id
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	if err := h.svc.DeleteRecipe(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.afterWrite(r, "recipe deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) update(w http.ResponseWriter, r *http.Request, id string, input recipe.RecipeInput) {
	rec, err := h.svc.UpdateRecipe(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.afterWrite(r, "recipe updated", rec.ID)
	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// parseForm reads a urlencoded or multipart body bounded by maxFormBytes.
func (h *AdminHandler) parseForm(w http.ResponseWriter, r *http.Request) (recipe.RecipeInput, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFormBytes)

	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(h.maxFormBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "form too large")
			return recipe.RecipeInput{}, "", false
		}
		writeError(w, http.StatusBadRequest, "invalid form body")
		return recipe.RecipeInput{}, "", false
	}

	input, id, err := recipe.ParseForm(r.PostForm)
	if err != nil {
		handleError(h.log, w, r, err)
		return recipe.RecipeInput{}, "", false
	}
	return input, id, true
}

func (h *AdminHandler) afterWrite(r *http.Request, msg, id string) {
	ctx := r.Context()
	subject, _ := ctxutil.AdminSubjectFromCtx(ctx)
	h.log.InfoContext(ctx, msg, slog.String("recipe_id", id), slog.String("admin", subject))

	if err := h.cache.Invalidate(ctx); err != nil {
		h.log.WarnContext(ctx, "cache invalidate", slog.String("error", err.Error()))
	}
}
