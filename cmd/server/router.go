package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/tasks-api/internal/api/middleware"
)

// setupRouter creates the router with its middleware stack and task routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	// Trace runs outside Recoverer so a recovered panic still carries X-Trace-ID.
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", app.taskHandler.ListTasks)
		r.Post("/", app.taskHandler.CreateTask)
		r.Get("/{id}", app.taskHandler.GetTask)
		r.Put("/{id}", app.taskHandler.UpdateTask)
		r.Delete("/{id}", app.taskHandler.DeleteTask)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", slog.String("error", err.Error()))
		}
	})

	return r
}
