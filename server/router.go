package server

import (
	"github.com/go-chi/chi/v5"

	"github.com/zenlead/studio/settings"
)

// NewRouter wires the model-settings routes. The static
// /models/settings/all route is registered alongside the
// /models/{model_slug} routes; chi matches static segments first.
func NewRouter(service *settings.Service) chi.Router {
	handler := NewHandler(service)

	mux := chi.NewRouter()
	mux.Use(requestLogger)
	mux.Use(recoverer)

	mux.Get("/models/settings/all", handler.GetAllModelSettings)
	mux.Get("/models/{model_slug}/settings", handler.GetModelSettings)
	mux.Post("/models/{model_slug}/validate", handler.ValidateUserInput)
	mux.Put("/admin/models/{model_slug}/settings", handler.UpdateModelSettings)

	return mux
}
