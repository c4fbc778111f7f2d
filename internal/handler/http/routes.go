package http

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/v1/health", h.health)

		r.Route("/justwatch", func(r chi.Router) {
			r.Get("/search", h.searchTitles)
			r.Get("/title/{nodeID}", h.getTitle)
			r.Get("/offers/{nodeID}", h.getTitleOffers)
			r.Get("/locales", h.getLocales)
		})
	})

	// Static assets take the root when configured; the banner answers
	// otherwise. The /api prefix is registered above either way.
	if h.staticDir != "" {
		if _, err := os.Stat(h.staticDir); err != nil {
			h.logger.Warn().Err(err).Str("dir", h.staticDir).Msg("static dir not accessible, serving banner instead")
			router.Get("/", h.banner)
		} else {
			fileServer := http.FileServer(http.Dir(h.staticDir))
			router.Handle("/*", fileServer)
		}
	} else {
		router.Get("/", h.banner)
	}

	return router
}
