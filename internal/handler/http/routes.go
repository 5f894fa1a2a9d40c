package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.readRoot)
	router.Get("/api/hello", h.hello)
	router.Get("/test", h.testDatabase)

	router.Post("/api/credentials", h.createCredential)
	router.Get("/api/credentials", h.listCredentials)

	return router
}
