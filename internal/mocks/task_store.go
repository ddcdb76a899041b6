package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// InMemoryTaskStore implements store.TaskStore for testing.
// It is safe for concurrent use.
type InMemoryTaskStore struct {
	// Function fields for customizable behavior
	FindAllFn    func(ctx context.Context) ([]*domain.Task, error)
	FindByIDFn   func(ctx context.Context, id int64) (*domain.Task, error)
	SaveFn       func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	DeleteByIDFn func(ctx context.Context, id int64) error

	mu     sync.Mutex
	txMu   sync.Mutex
	tasks  map[int64]*domain.Task
	nextID int64
}

// NewInMemoryTaskStore creates an empty store whose IDs start at 1.
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

var _ store.TaskStore = (*InMemoryTaskStore)(nil)

// FindAll implements the TaskStore interface, returning tasks in ID order.
func (m *InMemoryTaskStore) FindAll(ctx context.Context) ([]*domain.Task, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		tasks = append(tasks, task.Clone())
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// FindByID implements the TaskStore interface
func (m *InMemoryTaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// Save implements the TaskStore interface
func (m *InMemoryTaskStore) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	saved := task.Clone()
	if saved.IsPersisted() {
		if _, ok := m.tasks[saved.ID]; !ok {
			return nil, store.ErrTaskNotFound
		}
	} else {
		saved.ID = m.nextID
		m.nextID++
	}

	m.tasks[saved.ID] = saved
	return saved.Clone(), nil
}

// DeleteByID implements the TaskStore interface
func (m *InMemoryTaskStore) DeleteByID(ctx context.Context, id int64) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

// WithTx implements the TaskStore interface. The in-memory store has no
// transactions, so it returns itself.
func (m *InMemoryTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

// WithinTx implements the TaskStore interface. Calls are serialized so the
// operations inside fn are not interleaved with another WithinTx call.
func (m *InMemoryTaskStore) WithinTx(ctx context.Context, fn store.TaskTxFn) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, m)
}

// Len returns the number of stored tasks.
func (m *InMemoryTaskStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
