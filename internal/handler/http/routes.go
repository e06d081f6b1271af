package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(h.withTimeout)
	}

	router.Get("/", h.index)
	router.Get("/api/health", h.health)

	router.Get("/api/users", h.listUsers)
	router.Post("/api/users", h.createUser)
	router.Post("/api/users/{_id}/exercises", h.addExercise)
	router.Get("/api/users/{_id}/logs", h.getLogs)

	// destructive, only when explicitly enabled
	if h.enableReset {
		router.Get("/api/reset", h.reset)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
