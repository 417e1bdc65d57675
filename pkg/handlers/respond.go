package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"authgate/pkg/principal"
)

const (
	typeError   string = "error"
	typeMessage string = "message"
)

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusBadRequest, typeError, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, typeError, "bad json")
		return false
	}

	return true
}

func WriteResp(w http.ResponseWriter, logger *slog.Logger, body map[string]any, status int) bool {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}

func getPrincipalFromContext(w http.ResponseWriter, r *http.Request, p *principal.Principal) bool {
	val, ok := r.Context().Value(principal.PrincipalContextKey).(*principal.Principal)
	if !ok || val == nil || val.UserID == "" {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return false
	}
	*p = *val
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}
