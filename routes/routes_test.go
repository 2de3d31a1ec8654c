package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gourmet/articles"
	"gourmet/auth"
	"gourmet/favorites"
	"gourmet/ingredients"
	"gourmet/ratelim"
	"gourmet/recipes"
)

// newRouter wires handlers with no backing stores; only paths that fail before
// touching a store are exercised.
func newRouter(t *testing.T, rl *ratelim.RateLimiter) *httprouter.Router {
	t.Helper()
	log := zap.NewNop()
	h := Handlers{
		Recipes:     recipes.NewHandler(recipes.NewService(nil, nil, log), log),
		Favorites:   favorites.NewHandler(nil, nil, log),
		Auth:        auth.NewHandler(auth.NewService(nil, log), log),
		Ingredients: ingredients.NewHandler(ingredients.NewService(nil, nil), log),
		Articles:    articles.NewHandler(articles.NewClient(articles.Config{}, nil, log)),
	}
	router := httprouter.New()
	require.NotPanics(t, func() { RoutesWrapper(router, h, rl) })
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestHealthAndMetrics(t *testing.T) {
	router := newRouter(t, ratelim.NewRateLimiter(100, 100))

	rec := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":true,"status":"ok"}`, rec.Body.String())

	serve(router, http.MethodGet, "/articles", "")
	rec = serve(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gourmet_http_requests_total")
}

func TestAliasesAndPrefixedPathsBothResolve(t *testing.T) {
	router := newRouter(t, ratelim.NewRateLimiter(100, 100))

	for _, path := range []string{"/bookmark", "/users/bookmark", "/regimes", "/users/regimes", "/business/bookmark", "/users/business/bookmark"} {
		rec := serve(router, http.MethodPost, path, `{}`)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{"result":false,"error":"Missing or empty fields","kind":"validation"}`, rec.Body.String(), path)
	}
}

func TestArticlesWithoutKeyIsEmpty(t *testing.T) {
	router := newRouter(t, ratelim.NewRateLimiter(100, 100))
	rec := serve(router, http.MethodGet, "/articles", "")
	assert.JSONEq(t, `{"articles":[]}`, rec.Body.String())
}

func TestWritesAreRateLimited(t *testing.T) {
	router := newRouter(t, ratelim.NewRateLimiter(0.001, 1))

	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/users/signin", `{}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, http.MethodPost, "/users/signin", `{}`).Code)
}
