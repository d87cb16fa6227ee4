package rest

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/sebacontegrand/recetasjanet/internal/transport/middleware"
)

// Routes groups the handlers and the per-surface middleware.
// AdminGuard must reject unauthenticated requests.
type Routes struct {
	Health  *HealthHandler
	Recipes *RecipeHandler
	Admin   *AdminHandler

	Public     middleware.Middleware
	AdminGuard middleware.Middleware
}

// NewRouter registers every endpoint on an httprouter.Router.
// Global middleware (recovery, request id, logging, CORS) is applied by
// the caller around the returned handler.
func NewRouter(rt Routes) http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.HandlerFunc(http.MethodGet, "/live", rt.Health.Live)
	router.HandlerFunc(http.MethodGet, "/ready", rt.Health.Ready)
	router.HandlerFunc(http.MethodGet, "/health", rt.Health.Health)

	public := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(rt.Public)(h)
	}
	router.Handler(http.MethodGet, "/api/recipes", public(rt.Recipes.List))
	router.Handler(http.MethodGet, "/api/recipes/:slug", public(rt.Recipes.Get))
	router.Handler(http.MethodGet, "/api/categories", public(rt.Recipes.Categories))
	router.Handler(http.MethodGet, "/api/tags", public(rt.Recipes.Tags))

	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(rt.AdminGuard)(h)
	}
	router.Handler(http.MethodGet, "/admin/recipes", admin(rt.Admin.List))
	router.Handler(http.MethodPost, "/admin/recipes", admin(rt.Admin.Submit))
	router.Handler(http.MethodGet, "/admin/recipes/:id", admin(rt.Admin.Get))
	router.Handler(http.MethodPut, "/admin/recipes/:id", admin(rt.Admin.Update))
	router.Handler(http.MethodDelete, "/admin/recipes/:id", admin(rt.Admin.Delete))

	return router
}
