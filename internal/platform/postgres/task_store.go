package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

const taskColumns = `id, title, description, completed`

// PostgresTaskStore implements store.TaskStore using PostgreSQL.
type PostgresTaskStore struct {
	db store.DBTX
	// sqlDB is set only when the store runs on the connection pool; it is nil
	// for stores bound to a transaction.
	sqlDB  *sql.DB
	logger *slog.Logger
}

// NewPostgresTaskStore creates a PostgresTaskStore on a connection or transaction
// managed by the caller. If logger is nil, slog.Default() is used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	sqlDB, _ := db.(*sql.DB)
	return &PostgresTaskStore{
		db:     db,
		sqlDB:  sqlDB,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// FindAll implements store.TaskStore.FindAll.
// Tasks are returned in ID order so repeated reads are stable.
func (s *PostgresTaskStore) FindAll(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "find_all", "failed to query tasks", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("task", "find_all", "failed to scan task", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning task rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "find_all", "failed to read tasks", MapError(err))
	}

	log.Debug("found tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// FindByID implements store.TaskStore.FindByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, store.NewStoreError("task", "find_by_id", "failed to query task", MapError(err))
	}

	return task, nil
}

// Save implements store.TaskStore.Save.
// A task without an ID is inserted and receives the generated ID; any other
// task is updated in place. Returns store.ErrTaskNotFound when the row to
// update does not exist.
func (s *PostgresTaskStore) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task.IsPersisted() {
		return s.update(ctx, task)
	}
	return s.insert(ctx, task)
}

func (s *PostgresTaskStore) insert(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tasks (title, description, completed)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	saved := task.Clone()
	err := s.db.QueryRowContext(ctx, query,
		saved.Title,
		toNullString(saved.Description),
		saved.Completed,
	).Scan(&saved.ID)
	if err != nil {
		log.Error("failed to insert task", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "insert", "failed to insert task", MapError(err))
	}

	log.Info("task created", slog.Int64("task_id", saved.ID))
	return saved, nil
}

func (s *PostgresTaskStore) update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		toNullString(task.Description),
		task.Completed,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return nil, store.NewStoreError("task", "update", "failed to update task", MapError(err))
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for update", slog.Int64("task_id", task.ID))
			return nil, store.ErrTaskNotFound
		}
		return nil, err
	}

	log.Info("task updated", slog.Int64("task_id", task.ID))
	return task.Clone(), nil
}

// DeleteByID implements store.TaskStore.DeleteByID.
// Returns store.ErrTaskNotFound if no row was deleted.
func (s *PostgresTaskStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return store.NewStoreError("task", "delete", "failed to delete task", MapError(err))
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for delete", slog.Int64("task_id", id))
			return store.ErrTaskNotFound
		}
		return err
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}

// WithTx implements store.TaskStore.WithTx.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// WithinTx implements store.TaskStore.WithinTx. A store that is already bound
// to a transaction runs fn directly on itself.
func (s *PostgresTaskStore) WithinTx(ctx context.Context, fn store.TaskTxFn) error {
	if s.sqlDB == nil {
		return fn(ctx, s)
	}
	return store.RunInTransaction(ctx, s.sqlDB, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.WithTx(tx))
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task        domain.Task
		description sql.NullString
	)
	if err := row.Scan(&task.ID, &task.Title, &description, &task.Completed); err != nil {
		return nil, err
	}
	if description.Valid {
		task.Description = &description.String
	}
	return &task, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
