package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taskRowColumns = []string{"id", "title", "description", "completed"}

func newMockTaskStore(t *testing.T) (*postgres.PostgresTaskStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return postgres.NewPostgresTaskStore(db, nil), mock
}

func strPtr(s string) *string { return &s }

func TestNewPostgresTaskStore_NilDB(t *testing.T) {
	assert.Panics(t, func() {
		postgres.NewPostgresTaskStore(nil, nil)
	})
}

func TestPostgresTaskStore_FindAll(t *testing.T) {
	t.Run("returns tasks in id order", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectQuery("SELECT (.+) FROM tasks ORDER BY id").
			WillReturnRows(sqlmock.NewRows(taskRowColumns).
				AddRow(1, "first", "has description", false).
				AddRow(2, "second", nil, true))

		tasks, err := s.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, tasks, 2)

		assert.Equal(t, int64(1), tasks[0].ID)
		require.NotNil(t, tasks[0].Description)
		assert.Equal(t, "has description", *tasks[0].Description)
		assert.Equal(t, int64(2), tasks[1].ID)
		assert.Nil(t, tasks[1].Description)
		assert.True(t, tasks[1].Completed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectQuery("FROM tasks").WillReturnRows(sqlmock.NewRows(taskRowColumns))

		tasks, err := s.FindAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("query error", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectQuery("FROM tasks").WillReturnError(errors.New("connection refused"))

		_, err := s.FindAll(context.Background())
		require.Error(t, err)
		var storeErr *store.StoreError
		assert.ErrorAs(t, err, &storeErr)
	})
}

func TestPostgresTaskStore_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectQuery("FROM tasks WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(7, "seven", nil, false))

		task, err := s.FindByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, &domain.Task{ID: 7, Title: "seven"}, task)
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectQuery("FROM tasks WHERE id = \\$1").
			WithArgs(int64(100)).
			WillReturnError(sql.ErrNoRows)

		task, err := s.FindByID(context.Background(), 100)
		assert.Nil(t, task)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.True(t, store.IsNotFoundError(err))
	})
}

func TestPostgresTaskStore_Save(t *testing.T) {
	t.Run("insert assigns id", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectQuery("INSERT INTO tasks").
			WithArgs("Test Task 1", "Description test task 1", false).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		input := &domain.Task{Title: "Test Task 1", Description: strPtr("Description test task 1")}
		saved, err := s.Save(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, int64(42), saved.ID)
		assert.Equal(t, "Test Task 1", saved.Title)
		assert.Equal(t, "Description test task 1", *saved.Description)
		assert.Zero(t, input.ID, "input must not be mutated")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert with null description", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectQuery("INSERT INTO tasks").
			WithArgs("no description", nil, true).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		saved, err := s.Save(context.Background(), &domain.Task{Title: "no description", Completed: true})
		require.NoError(t, err)
		assert.Nil(t, saved.Description)
	})

	t.Run("update existing", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectExec("UPDATE tasks").
			WithArgs("renamed", nil, true, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		saved, err := s.Save(context.Background(), &domain.Task{ID: 3, Title: "renamed", Completed: true})
		require.NoError(t, err)
		assert.Equal(t, int64(3), saved.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update missing row", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectExec("UPDATE tasks").
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := s.Save(context.Background(), &domain.Task{ID: 100, Title: "ghost"})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("not null violation maps to invalid entity", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectQuery("INSERT INTO tasks").WillReturnError(newPgError("23502"))

		_, err := s.Save(context.Background(), &domain.Task{Title: "x"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresTaskStore_DeleteByID(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectExec("DELETE FROM tasks WHERE id = \\$1").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.DeleteByID(context.Background(), 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectExec("DELETE FROM tasks").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.DeleteByID(context.Background(), 5), store.ErrTaskNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectExec("DELETE FROM tasks").WillReturnError(errors.New("boom"))

		err := s.DeleteByID(context.Background(), 5)
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostgresTaskStore_WithinTx(t *testing.T) {
	t.Run("commits when fn succeeds", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM tasks WHERE id").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(1, "old", nil, false))
		mock.ExpectExec("UPDATE tasks").
			WithArgs("new", nil, false, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := s.WithinTx(context.Background(), func(ctx context.Context, txStore store.TaskStore) error {
			task, err := txStore.FindByID(ctx, 1)
			if err != nil {
				return err
			}
			task.Title = "new"
			_, err = txStore.Save(ctx, task)
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		s, mock := newMockTaskStore(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM tasks WHERE id").
			WithArgs(int64(9)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := s.WithinTx(context.Background(), func(ctx context.Context, txStore store.TaskStore) error {
			_, err := txStore.FindByID(ctx, 9)
			return err
		})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store bound to a transaction runs fn directly", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM tasks").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)

		txStore := postgres.NewPostgresTaskStore(db, nil).WithTx(tx)
		err = txStore.WithinTx(context.Background(), func(ctx context.Context, inner store.TaskStore) error {
			return inner.DeleteByID(ctx, 1)
		})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
