package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"gourmet/errs"
	"gourmet/models"
	"gourmet/sets"
	"gourmet/utils"
)

type Handler struct {
	Svc *Service
	Log *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in Credentials
	if err := utils.DecodeAndValidate(r, &in, errs.MsgMissingFields); err != nil {
		h.respond(w, "auth.signup", nil, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	token, err := h.Svc.Signup(ctx, in)
	h.respond(w, "auth.signup", utils.M{"token": token}, err)
}

func (h *Handler) Signin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in Credentials
	if err := utils.DecodeAndValidate(r, &in, errs.MsgMissingFields); err != nil {
		h.respond(w, "auth.signin", nil, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	u, err := h.Svc.Signin(ctx, in)
	if err != nil {
		h.respond(w, "auth.signin", nil, err)
		return
	}
	h.respond(w, "auth.signin", utils.M{
		"token":      u.Token,
		"email":      u.Email,
		"username":   u.Username,
		"favrecipes": sets.Of(u.FavRecipes...).Items(),
		"favshops":   sets.New(func(b models.Business) string { return b.Siret }, u.FavBusinesses...).Items(),
		"regime":     sets.Of(u.Regime...).Items(),
	}, nil)
}

func (h *Handler) respond(w http.ResponseWriter, op string, payload utils.M, err error) {
	utils.LogFailure(h.Log, op, err)
	utils.Respond(w, payload, err)
}
