// Package ingredients looks up names in the read-only ingredient reference table.
package ingredients

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"gourmet/errs"
	"gourmet/models"
	"gourmet/utils"
)

const (
	MsgNoneFound = "Aucun ingrédient trouvé"
	maxResults   = 50
	cacheTTL     = 10 * time.Minute
)

type Store interface {
	SearchByName(ctx context.Context, nom string, limit int64) ([]models.IngredientRef, error)
}

// Cache is satisfied by *rdx.Cache.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) bool
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration)
}

// Match is the client-facing shape: the reference code becomes the id.
type Match struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Service struct {
	store Store
	cache Cache
}

func NewService(store Store, cache Cache) *Service {
	return &Service{store: store, cache: cache}
}

// Search matches nom as a case-insensitive substring. The table never changes at runtime,
// so results are cached per lowercased name.
func (s *Service) Search(ctx context.Context, nom string) ([]Match, error) {
	nom = strings.TrimSpace(nom)
	if nom == "" {
		return nil, errs.Validation(errs.MsgMissingFields)
	}
	key := "ingredients:" + strings.ToLower(nom)
	var out []Match
	if s.cache != nil && s.cache.GetJSON(ctx, key, &out) {
		return out, nil
	}

	refs, err := s.store.SearchByName(ctx, nom, maxResults)
	if err != nil {
		return nil, errs.Store(err)
	}
	if len(refs) == 0 {
		return nil, errs.NotFound(MsgNoneFound)
	}
	out = make([]Match, len(refs))
	for i, r := range refs {
		out[i] = Match{ID: r.Code, Title: r.Nom}
	}
	if s.cache != nil {
		s.cache.SetJSON(ctx, key, out, cacheTTL)
	}
	return out, nil
}

type Handler struct {
	Svc *Service
	Log *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}

type searchRequest struct {
	Nom string `json:"nom" validate:"required"`
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in searchRequest
	if err := utils.DecodeAndValidate(r, &in, errs.MsgMissingFields); err != nil {
		utils.LogFailure(h.Log, "ingredients.search", err)
		utils.Respond(w, nil, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	found, err := h.Svc.Search(ctx, in.Nom)
	utils.LogFailure(h.Log, "ingredients.search", err)
	utils.Respond(w, utils.M{"ingredients": found}, err)
}
