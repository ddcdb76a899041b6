package domain

// Task is a single to-do item tracked by the application.
// A zero ID means the task has not been persisted yet; the store assigns
// the ID on first save and it never changes afterwards.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// IsPersisted reports whether the store has assigned an ID to the task.
func (t *Task) IsPersisted() bool {
	return t.ID > 0
}

// Overwrite replaces the mutable fields of t with the values from details.
// All three fields are copied unconditionally, so a field missing from the
// caller's payload ends up as its zero value. The ID is left untouched.
func (t *Task) Overwrite(details *Task) {
	t.Title = details.Title
	t.Description = cloneString(details.Description)
	t.Completed = details.Completed
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	c.Description = cloneString(t.Description)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// ValidateForCreate checks the fields a new task must carry.
func (t *Task) ValidateForCreate() error {
	if t.Title == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	return nil
}
