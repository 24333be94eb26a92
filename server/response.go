package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zenlead/studio/core/logger"
	"github.com/zenlead/studio/settings"
)

// envelope is the response shape shared by every route. Status mirrors
// the HTTP status code so clients reading only the body see the same
// outcome.
type envelope struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	body := envelope{
		Status:  status,
		Success: status < http.StatusBadRequest,
		Message: message,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, settings.ErrNotFound):
		writeJSON(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, settings.ErrMalformedSchema):
		writeJSON(w, http.StatusBadRequest, err.Error(), nil)
	default:
		logger.Error("Request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}
