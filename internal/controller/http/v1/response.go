package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kurochkinivan/doc_generator/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusCode(err), errorResponse{Error: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadSecret):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrBadFormat), errors.Is(err, domain.ErrMissingRequiredColumn):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
