package api

import "github.com/phrazzld/tasks-api/internal/domain"

// TaskRequest defines the payload for POST /tasks. Any id in the body is ignored.
type TaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// UpdateTaskRequest defines the payload for PUT /tasks/{id}. Every field is
// written to the task, so an omitted field resets it to its zero value.
type UpdateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

func (r TaskRequest) toDomain() *domain.Task {
	return &domain.Task{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

func (r UpdateTaskRequest) toDomain() *domain.Task {
	return &domain.Task{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, taskToResponse(task))
	}
	return resp
}
