package main

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// application holds the shared dependencies and ensures they are cleaned up
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore   store.TaskStore
	taskService service.TaskService
	taskHandler *api.TaskHandler
}

// newApplication wires the PostgreSQL-backed task stack on db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return newApplicationWithStore(cfg, logger, db, postgres.NewPostgresTaskStore(db, logger))
}

// newApplicationWithStore wires the task stack on an arbitrary store. db may be
// nil when the store does not need a connection.
func newApplicationWithStore(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	taskStore store.TaskStore,
) *application {
	if logger == nil {
		logger = slog.Default()
	}

	// NewTaskService only fails on a nil store, which the callers never pass.
	taskService, err := service.NewTaskService(taskStore, logger)
	if err != nil {
		// ALLOW-PANIC: composition root with a programming error
		panic(err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		taskStore:   taskStore,
		taskService: taskService,
		taskHandler: api.NewTaskHandler(taskService, logger),
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
	app.db = nil
}
