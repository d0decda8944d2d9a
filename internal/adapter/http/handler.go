package httpadapter

import (
	"net/http"

	"fundrik/internal/core/port"

	"github.com/go-chi/chi/v5"
	"log/slog"
)

// Handler is the inbound HTTP adapter for campaign administration. It
// holds the campaign service to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignService
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The returned
// Handler registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.CampaignService, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Post("/campaigns", h.handleSaveCampaign)
		r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
