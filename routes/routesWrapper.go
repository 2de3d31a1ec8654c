package routes

import (
	"github.com/julienschmidt/httprouter"

	"gourmet/articles"
	"gourmet/auth"
	"gourmet/favorites"
	"gourmet/ingredients"
	"gourmet/ratelim"
	"gourmet/recipes"
)

type Handlers struct {
	Recipes     *recipes.Handler
	Favorites   *favorites.Handler
	Auth        *auth.Handler
	Ingredients *ingredients.Handler
	Articles    *articles.Handler
}

func RoutesWrapper(router *httprouter.Router, h Handlers, rateLimiter *ratelim.RateLimiter) {
	AddRecipeRoutes(router, h.Recipes, rateLimiter)
	AddFavoriteRoutes(router, h.Favorites, rateLimiter)
	AddAuthRoutes(router, h.Auth, rateLimiter)
	AddCommerceRoutes(router, h.Ingredients)
	AddArticleRoutes(router, h.Articles)
	AddUtilityRoutes(router)
}
