package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

// defaultPageSize applies when the list request has no limit.
const defaultPageSize = 24

type recipeReader interface {
	ListPublished(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeSummary, error)
	GetBySlug(ctx context.Context, slug string) (*domain.RecipeDetail, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
}

type pageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
	Invalidate(ctx context.Context) error
}

// RecipeHandler serves the public catalog.
type RecipeHandler struct {
	svc   recipeReader
	cache pageCache
	log   *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(svc recipeReader, cache pageCache, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{svc: svc, cache: cache, log: logger.With("handler", "recipes")}
}

// List returns published recipes, newest first.
// GET /api/recipes?q=flan&limit=24&offset=0
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	key := "recipes:list:" + url.Values{
		"q":      {filter.Query},
		"limit":  {strconv.Itoa(filter.Limit)},
		"offset": {strconv.Itoa(filter.Offset)},
	}.Encode()

	h.cached(w, r, key, func(ctx context.Context) (any, error) {
		list, err := h.svc.ListPublished(ctx, filter)
		if err != nil {
			return nil, err
		}
		return toSummaryList(list), nil
	})
}

// Get returns one published recipe with its collections.
// GET /api/recipes/:slug
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

	h.cached(w, r, "recipes:slug:"+slug, func(ctx context.Context) (any, error) {
		detail, err := h.svc.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		return toDetailResponse(detail), nil
	})
}

// Categories returns all categories by name.
// GET /api/categories
func (h *RecipeHandler) Categories(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryList(list))
}

// Tags returns all tags by name.
// GET /api/tags
func (h *RecipeHandler) Tags(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListTags(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagList(list))
}

// cached serves key from the page cache, or renders load and stores the
// body on success. Cache failures are logged and the request is served
// from the store.
func (h *RecipeHandler) cached(w http.ResponseWriter, r *http.Request, key string, load func(ctx context.Context) (any, error)) {
	ctx := r.Context()

	body, ok, err := h.cache.Get(ctx, key)
	if err != nil {
		h.log.WarnContext(ctx, "cache get", slog.String("key", key), slog.String("error", err.Error()))
	}
	if ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	v, err := load(ctx)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.cache.Set(ctx, key, buf.Bytes()); err != nil {
		h.log.WarnContext(ctx, "cache set", slog.String("key", key), slog.String("error", err.Error()))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// parseFilter reads q, limit and offset. Non-numeric values are a
// validation error; range checks are left to the service.
func parseFilter(q url.Values) (domain.RecipeFilter, error) {
	filter := domain.RecipeFilter{
		Query: strings.TrimSpace(q.Get("q")),
		Limit: defaultPageSize,
	}

	var errs []domain.FieldError
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		filter.Offset = n
	}
	if len(errs) > 0 {
		return filter, domain.NewValidationErrors(errs)
	}
	return filter, nil
}
