package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.cors().Handler)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// registered before the sub-routers so they inherit them
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Get("/profile", h.profile)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/categories", h.getCategories)
			r.Post("/categories", h.addCategory)
			r.Delete("/categories/{id}", h.deleteCategory)

			r.Get("/entries", h.getEntries)
			r.Get("/entries/category/{categoryId}", h.getEntriesByCategory)
			r.Get("/entries/{id}", h.getEntry)
			r.Post("/entries", h.addEntry)
			r.Put("/entries/{id}", h.updateEntry)
			r.Delete("/entries/{id}", h.deleteEntry)
		})
	})

	return router
}

func (h *Handler) cors() *cors.Cors {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
	})
}
