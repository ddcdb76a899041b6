package main

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
)

const migrateUp = postgres.MigrateUp

var validMigrationCommands = map[string]bool{
	postgres.MigrateUp:      true,
	postgres.MigrateDown:    true,
	postgres.MigrateStatus:  true,
	postgres.MigrateVersion: true,
	postgres.MigrateReset:   true,
}

func isValidMigrationCommand(command string) bool {
	return validMigrationCommands[command]
}

// runMigrations executes a goose command, tagging every log line with a
// correlation ID so one run can be followed through the logs.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	log := logger.With(slog.String("correlation_id", uuid.NewString()))

	start := time.Now()
	log.Info("Running database migrations", slog.String("command", command))

	if err := postgres.Migrate(ctx, db, command, log); err != nil {
		log.Error("Database migration failed",
			slog.String("command", command),
			slog.String("error", err.Error()))
		return err
	}

	log.Info("Database migrations finished",
		slog.String("command", command),
		slog.Duration("duration", time.Since(start)))
	return nil
}
