package http //nolint:revive // directory-based package name, imported with alias

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Route("/api/epc", func(r chi.Router) {
		r.Post("/", h.HandleIssue)
		r.Post("/qr", h.HandleQR)
		r.Get("/currencies", h.HandleCurrencies)
		r.Get("/{id}", h.HandleGet)
		r.Get("/{id}/qr", h.HandleStoredQR)
	})

	return r
}
