package handlers

import (
	"worklog/storage"
	"worklog/summary"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the full API surface on top of a Store.
func NewRouter(store storage.Store) *chi.Mux {
	workLogHandler := NewWorkLogHandler(store)
	summaryHandler := NewSummaryHandler(summary.NewService(store))
	settingsHandler := NewSettingsHandler(store)

	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Route("/work-logs", func(r chi.Router) {
			r.Get("/week", workLogHandler.ListWeek)
			r.Get("/week/summary", summaryHandler.Weekly)
			r.Post("/", workLogHandler.Create)
			r.Put("/{id}", workLogHandler.Update)
			r.Delete("/{id}", workLogHandler.Delete)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/{key}", settingsHandler.Get)
			r.Put("/{key}", settingsHandler.Put)
		})
	})

	return router
}
