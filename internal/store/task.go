package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskTxFn runs against a TaskStore bound to a single transaction.
type TaskTxFn func(ctx context.Context, txStore TaskStore) error

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// FindAll returns every stored task. The slice is empty, never nil,
	// when there are no tasks.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// FindByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// Save inserts the task when it has no ID yet and updates it otherwise.
	// It returns the persisted form, including the assigned ID.
	// Returns ErrTaskNotFound when updating a task that no longer exists.
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// DeleteByID removes the task with the given ID.
	// Returns ErrTaskNotFound if nothing was deleted.
	DeleteByID(ctx context.Context, id int64) error

	// WithTx returns a TaskStore that runs every operation on tx.
	WithTx(tx *sql.Tx) TaskStore

	// WithinTx runs fn inside a transaction. fn receives a store bound to
	// that transaction; returning an error rolls it back.
	WithinTx(ctx context.Context, fn TaskTxFn) error
}
