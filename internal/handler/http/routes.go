package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/", h.root)
	router.Get("/version", h.getServerVersion)
	router.Post("/signup", h.signup)
	router.Post("/login", h.login)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/me", h.me)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed(router))

	return router
}
