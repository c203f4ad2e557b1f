package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// snapshot slot routes, scoped to the sync key the token was issued for
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/snapshot/{syncKey}", h.fetchSnapshot)
		r.With(h.storeHashing).Put("/api/snapshot/{syncKey}", h.storeSnapshot)
	})

	return router
}
