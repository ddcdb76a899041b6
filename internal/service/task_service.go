package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskService provides the task use cases exposed over HTTP.
type TaskService interface {
	// GetAllTasks returns every task, in the order the store yields them.
	GetAllTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTaskByID returns the task with the given ID, or ErrTaskNotFound.
	GetTaskByID(ctx context.Context, id int64) (*domain.Task, error)

	// CreateTask persists a new task. Any ID on the input is ignored.
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// UpdateTask overwrites the title, description and completion flag of an
	// existing task with the values from details. Returns ErrTaskNotFound
	// without saving anything when the task does not exist.
	UpdateTask(ctx context.Context, id int64, details *domain.Task) (*domain.Task, error)

	// DeleteTask removes the task with the given ID, or returns ErrTaskNotFound.
	DeleteTask(ctx context.Context, id int64) error
}

// TaskServiceError wraps unexpected failures from the task service.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task")
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError. Not-found conditions from
// either layer collapse into ErrTaskNotFound, and validation errors are passed
// through untouched so callers can report the offending field.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a TaskService backed by taskStore.
// It returns an error if taskStore is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// GetAllTasks implements TaskService.GetAllTasks.
func (s *taskServiceImpl) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.FindAll(ctx)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("get_all_tasks", "failed to list tasks", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	return tasks, nil
}

// GetTaskByID implements TaskService.GetTaskByID.
func (s *taskServiceImpl) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", slog.Int64("task_id", id))
		} else {
			log.Error("failed to get task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	return task, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if task == nil {
		return nil, domain.NewValidationError("task", "is required", nil)
	}

	candidate := task.Clone()
	candidate.ID = 0
	if err := candidate.ValidateForCreate(); err != nil {
		log.Debug("rejected invalid task", slog.String("error", err.Error()))
		return nil, err
	}

	created, err := s.taskStore.Save(ctx, candidate)
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", slog.Int64("task_id", created.ID))
	return created, nil
}

// UpdateTask implements TaskService.UpdateTask.
// The lookup and the save run in one transaction so a concurrent delete
// cannot slip between them.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	details *domain.Task,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if details == nil {
		return nil, domain.NewValidationError("task", "is required", nil)
	}

	var updated *domain.Task
	err := s.taskStore.WithinTx(ctx, func(ctx context.Context, txStore store.TaskStore) error {
		existing, err := txStore.FindByID(ctx, id)
		if err != nil {
			return err
		}

		existing.Overwrite(details)

		updated, err = txStore.Save(ctx, existing)
		return err
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for update", slog.Int64("task_id", id))
		} else {
			log.Error("failed to update task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated", slog.Int64("task_id", id))
	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.taskStore.WithinTx(ctx, func(ctx context.Context, txStore store.TaskStore) error {
		if _, err := txStore.FindByID(ctx, id); err != nil {
			return err
		}
		return txStore.DeleteByID(ctx, id)
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for delete", slog.Int64("task_id", id))
		} else {
			log.Error("failed to delete task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}
