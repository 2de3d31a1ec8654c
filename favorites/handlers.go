package favorites

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"gourmet/errs"
	"gourmet/models"
	"gourmet/utils"
)

const requestTimeout = 5 * time.Second

type Handler struct {
	Users   UserStore
	Recipes RecipeLister
	Log     *zap.Logger
}

func NewHandler(users UserStore, recipes RecipeLister, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Recipes: recipes, Log: logger}
}

type bookmarkRequest struct {
	Token    string `json:"token" validate:"required"`
	RecipeID string `json:"recipeId" validate:"required"`
}

type regimeRequest struct {
	Token  string `json:"token" validate:"required"`
	Regime string `json:"regime" validate:"required"`
}

type businessRequest struct {
	Token    string           `json:"token" validate:"required"`
	Business *models.Business `json:"business" validate:"required"`
}

type siretRequest struct {
	Token string `json:"token" validate:"required"`
	Siret string `json:"siret" validate:"required"`
}

func (h *Handler) AddBookmark(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in bookmarkRequest
	h.mutate(w, r, "favorites.bookmark.add", &in, "favRecipes", func(ctx context.Context) (any, error) {
		return Add(ctx, h.Users, Recipes, in.Token, in.RecipeID)
	})
}

func (h *Handler) RemoveBookmark(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in bookmarkRequest
	h.mutate(w, r, "favorites.bookmark.remove", &in, "favRecipes", func(ctx context.Context) (any, error) {
		return Remove(ctx, h.Users, Recipes, in.Token, in.RecipeID)
	})
}

func (h *Handler) Bookmarks(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	found, err := Bookmarks(ctx, h.Users, h.Recipes, ps.ByName("token"))
	h.respond(w, "favorites.bookmarks", utils.M{"bookmarks": found}, err)
}

func (h *Handler) AddRegime(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in regimeRequest
	h.mutate(w, r, "favorites.regime.add", &in, "regimes", func(ctx context.Context) (any, error) {
		return Add(ctx, h.Users, Regimes, in.Token, in.Regime)
	})
}

func (h *Handler) RemoveRegime(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in regimeRequest
	h.mutate(w, r, "favorites.regime.remove", &in, "regimes", func(ctx context.Context) (any, error) {
		return Remove(ctx, h.Users, Regimes, in.Token, in.Regime)
	})
}

func (h *Handler) Regimes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	regimes, err := List(ctx, h.Users, Regimes, ps.ByName("token"))
	h.respond(w, "favorites.regimes", utils.M{"regimes": regimes}, err)
}

func (h *Handler) AddBusiness(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in businessRequest
	h.mutate(w, r, "favorites.business.add", &in, "favBusinesses", func(ctx context.Context) (any, error) {
		return Add(ctx, h.Users, Businesses, in.Token, *in.Business)
	})
}

func (h *Handler) RemoveBusiness(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in siretRequest
	h.mutate(w, r, "favorites.business.remove", &in, "favBusinesses", func(ctx context.Context) (any, error) {
		return Remove(ctx, h.Users, Businesses, in.Token, in.Siret)
	})
}

func (h *Handler) Businesses(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	shops, err := List(ctx, h.Users, Businesses, ps.ByName("token"))
	h.respond(w, "favorites.businesses", utils.M{"favBusinesses": shops}, err)
}

// mutate decodes the body into in, runs op and answers with its result under key.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, name string, in any, key string, op func(context.Context) (any, error)) {
	if err := utils.DecodeAndValidate(r, in, errs.MsgMissingFields); err != nil {
		h.respond(w, name, nil, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	out, err := op(ctx)
	h.respond(w, name, utils.M{key: out}, err)
}

func (h *Handler) respond(w http.ResponseWriter, op string, payload utils.M, err error) {
	utils.LogFailure(h.Log, op, err)
	utils.Respond(w, payload, err)
}
