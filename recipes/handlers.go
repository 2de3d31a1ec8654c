package recipes

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

// Handler exposes the recipe service over HTTP.
type Handler struct {
	Svc *Service
	Log *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}

// Get serves GET /recipes/:id. "search" and "allRecipes" share the segment with the id
// wildcard, so they are dispatched here.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	switch id := ps.ByName("id"); id {
	case "search":
		h.Search(w, r, ps)
	case "allRecipes":
		h.All(w, r, ps)
	default:
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		recipe, err := h.Svc.Get(ctx, id)
		h.respond(w, "recipes.get", utils.M{"recipe": recipe}, err)
	}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	res, err := h.Svc.Search(ctx, ParseQuery(r.URL.Query()))
	h.respond(w, "recipes.search", utils.M{"recipes": res.Recipes, "pagination": res.Pagination}, err)
}

func (h *Handler) All(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	found, err := h.Svc.All(ctx)
	h.respond(w, "recipes.all", utils.M{"recipes": found}, err)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in models.RecipeEdit
	if err := utils.DecodeAndValidate(r, &in, errs.MsgMissingRequired); err != nil {
		h.respond(w, "recipes.create", nil, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	recipe, err := h.Svc.Create(ctx, in)
	h.respond(w, "recipes.create", utils.M{"recipe": recipe}, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch models.RecipePatch
	if err := utils.DecodeAndValidate(r, &patch, errs.MsgMissingRequired); err != nil {
		h.respond(w, "recipes.update", nil, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	recipe, err := h.Svc.Update(ctx, ps.ByName("id"), patch)
	h.respond(w, "recipes.update", utils.M{"recipe": recipe}, err)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := h.Svc.Delete(ctx, ps.ByName("id"))
	h.respond(w, "recipes.delete", utils.M{"message": "Recipe deleted successfully"}, err)
}

type voteRequest struct {
	Note *float64 `json:"note"`
}

func (h *Handler) Vote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in voteRequest
	if err := utils.DecodeAndValidate(r, &in, errs.MsgMissingRequired); err != nil {
		h.respond(w, "recipes.vote", nil, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	recipe, err := h.Svc.Vote(ctx, ps.ByName("id"), in.Note)
	h.respond(w, "recipes.vote", utils.M{"recipe": recipe}, err)
}

func (h *Handler) respond(w http.ResponseWriter, op string, payload utils.M, err error) {
	utils.LogFailure(h.Log, op, err)
	utils.Respond(w, payload, err)
}
