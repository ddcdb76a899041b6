package api

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// mockTaskService is a function-field implementation of service.TaskService.
// Unset functions panic so unexpected calls fail the test loudly.
type mockTaskService struct {
	GetAllTasksFn func(ctx context.Context) ([]*domain.Task, error)
	GetTaskByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	CreateTaskFn  func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	UpdateTaskFn  func(ctx context.Context, id int64, details *domain.Task) (*domain.Task, error)
	DeleteTaskFn  func(ctx context.Context, id int64) error
}

var _ service.TaskService = (*mockTaskService)(nil)

func (m *mockTaskService) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	return m.GetAllTasksFn(ctx)
}

func (m *mockTaskService) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	return m.GetTaskByIDFn(ctx, id)
}

func (m *mockTaskService) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return m.CreateTaskFn(ctx, task)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, id int64, details *domain.Task) (*domain.Task, error) {
	return m.UpdateTaskFn(ctx, id, details)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id int64) error {
	return m.DeleteTaskFn(ctx, id)
}
