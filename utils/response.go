package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"gourmet/errs"
)

type M map[string]any

// RespondWithJSON sends data as a JSON body with the given status.
func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// Respond writes the result envelope. On success payload is merged next to result:true;
// on failure the body is {result:false, error, kind}.
// Domain failures keep status 200 like every other answer the client gets; only store
// failures are reported as 500.
func Respond(w http.ResponseWriter, payload M, err error) {
	if err != nil {
		RespondWithError(w, err)
		return
	}
	body := M{"result": true}
	for k, v := range payload {
		body[k] = v
	}
	RespondWithJSON(w, http.StatusOK, body)
}

func RespondWithError(w http.ResponseWriter, err error) {
	kind := errs.KindOf(err)
	status := http.StatusOK
	if kind == errs.KindStore {
		status = http.StatusInternalServerError
	}
	RespondWithJSON(w, status, M{"result": false, "error": err.Error(), "kind": kind})
}

// LogFailure records a failed operation: store failures at Error, domain outcomes at Debug.
func LogFailure(log *zap.Logger, op string, err error) {
	if err == nil || log == nil {
		return
	}
	if errs.KindOf(err) == errs.KindStore {
		log.Error("operation failed", zap.String("op", op), zap.Error(err))
		return
	}
	log.Debug("operation rejected", zap.String("op", op), zap.String("reason", err.Error()))
}
