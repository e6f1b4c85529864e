package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/funnelhq/leadfunnel/internal/entity"
	"github.com/funnelhq/leadfunnel/internal/usecase"
)

func respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]string{"error": message})
}

// respondValidation reports the full field list when err is a validation
// failure and returns true; callers fall through to their own mapping
// otherwise.
func respondValidation(w http.ResponseWriter, err error) bool {
	var verrs usecase.ValidationErrors
	if errors.As(err, &verrs) {
		respond(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": verrs,
		})
		return true
	}
	return false
}

// respondNotFound collapses missing and not-owned resources into the same
// 404 so nothing leaks about other tenants.
func respondNotFound(w http.ResponseWriter, err error) bool {
	if errors.Is(err, entity.ErrLeadNotFound) || errors.Is(err, entity.ErrAccountNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return true
	}
	return false
}
