package articles

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"gourmet/utils"
)

type Handler struct {
	Client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{Client: client}
}

// List answers {articles}; there is no result flag on this route.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"articles": h.Client.Latest(ctx)})
}
