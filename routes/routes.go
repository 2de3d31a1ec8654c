package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gourmet/articles"
	"gourmet/auth"
	"gourmet/favorites"
	"gourmet/ingredients"
	"gourmet/middleware"
	"gourmet/ratelim"
	"gourmet/recipes"
	"gourmet/utils"
)

func handle(router *httprouter.Router, method, path string, h httprouter.Handle) {
	router.Handle(method, path, middleware.Instrument(path, h))
}

// AddRecipeRoutes registers the recipe routes. GET /recipes/:id also answers
// /recipes/search and /recipes/allRecipes.
func AddRecipeRoutes(router *httprouter.Router, h *recipes.Handler, rl *ratelim.RateLimiter) {
	handle(router, http.MethodGet, "/recipes/:id", h.Get)
	handle(router, http.MethodPost, "/recipes", rl.Limit(h.Create))
	handle(router, http.MethodPut, "/recipes/:id", rl.Limit(h.Update))
	handle(router, http.MethodDelete, "/recipes/:id", rl.Limit(h.Delete))
	handle(router, http.MethodPost, "/recipes/:id/vote", rl.Limit(h.Vote))
}

// AddFavoriteRoutes registers every favorites route under /users and again without the prefix.
func AddFavoriteRoutes(router *httprouter.Router, h *favorites.Handler, rl *ratelim.RateLimiter) {
	for _, prefix := range []string{"/users", ""} {
		handle(router, http.MethodPost, prefix+"/bookmark", rl.Limit(h.AddBookmark))
		handle(router, http.MethodDelete, prefix+"/bookmark", rl.Limit(h.RemoveBookmark))
		handle(router, http.MethodGet, prefix+"/bookmarks/:token", h.Bookmarks)

		handle(router, http.MethodPost, prefix+"/regimes", rl.Limit(h.AddRegime))
		handle(router, http.MethodDelete, prefix+"/regimes", rl.Limit(h.RemoveRegime))
		handle(router, http.MethodGet, prefix+"/regimes/:token", h.Regimes)

		handle(router, http.MethodPost, prefix+"/business/bookmark", rl.Limit(h.AddBusiness))
		handle(router, http.MethodDelete, prefix+"/business/bookmark", rl.Limit(h.RemoveBusiness))
		handle(router, http.MethodGet, prefix+"/business/bookmarks/:token", h.Businesses)
	}
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	handle(router, http.MethodPost, "/users/signup", rl.Limit(h.Signup))
	handle(router, http.MethodPost, "/users/signin", rl.Limit(h.Signin))
}

func AddCommerceRoutes(router *httprouter.Router, h *ingredients.Handler) {
	handle(router, http.MethodPost, "/commerces/ingredientsCpf", h.Search)
}

func AddArticleRoutes(router *httprouter.Router, h *articles.Handler) {
	handle(router, http.MethodGet, "/articles", h.List)
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/health", Health)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
}

func Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"result": true, "status": "ok"})
}
