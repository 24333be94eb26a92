package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zenlead/studio/core/logger"
	"github.com/zenlead/studio/settings"
)

// Handler serves the model-settings routes.
type Handler struct {
	service *settings.Service
}

func NewHandler(service *settings.Service) *Handler {
	return &Handler{service: service}
}

// GetModelSettings returns the settings document for one model.
func (h *Handler) GetModelSettings(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "model_slug")

	doc, err := h.service.GetModelSettings(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Model settings retrieved successfully", doc)
}

// GetAllModelSettings returns the settings documents for every active
// model, keyed by slug.
func (h *Handler) GetAllModelSettings(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.GetAllModelSettings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "All model settings retrieved successfully", docs)
}

// ValidateUserInput checks a user payload against the model's schema.
// Invalid input is a 400 with the per-field errors in the body.
func (h *Handler) ValidateUserInput(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "model_slug")

	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, "Request body must be a JSON object", nil)
		return
	}

	result, err := h.service.ValidateUserInput(r.Context(), slug, input)
	if err != nil {
		// A stored schema that no longer parses is a server-side defect,
		// not a client error.
		if errors.Is(err, settings.ErrMalformedSchema) {
			logger.Error("Stored schema for model %s is malformed: %v", slug, err)
			writeJSON(w, http.StatusInternalServerError, "Model settings are misconfigured", nil)
			return
		}
		writeError(w, err)
		return
	}

	if !result.Valid {
		writeJSON(w, http.StatusBadRequest, "Validation failed", result)
		return
	}

	writeJSON(w, http.StatusOK, "Validation completed", result)
}

// UpdateModelSettings creates or updates a model's settings document
// from the fields in the request body.
func (h *Handler) UpdateModelSettings(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "model_slug")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, "Request body must be a JSON object", nil)
		return
	}

	doc, err := h.service.UpdateModelSettings(r.Context(), slug, fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Model settings updated successfully", doc)
}
