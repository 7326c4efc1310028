package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/emphasis-trainer/internal/api"
	apiMiddleware "github.com/phrazzld/emphasis-trainer/internal/api/middleware"
)

// setupRouter registers the API routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	words := api.NewWordHandler(app.trainer, app.stats, app.parsed, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/words/next", words.NextWord)
		r.Post("/words/{id}/answer", words.SubmitAnswer)
		r.Get("/words/{id}/related", words.RelatedWords)
		r.Get("/diagnostics", words.Diagnostics)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
