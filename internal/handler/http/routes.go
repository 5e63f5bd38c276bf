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
	router.Use(withGZip)

	// routes without authentication
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
		r.Post("/api/logout", h.logout)
	})

	// routes behind a session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/me", h.me)
		r.Get("/api/users", h.listUsers)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
