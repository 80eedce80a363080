package todo

// Task is a single card on the board.
type Task struct {
	ID          string
	Title       string
	Description string
}

// Complete reports whether both user-facing fields are non-empty, the only
// condition a task must meet to be saved.
func (t Task) Complete() bool {
	return t.Title != "" && t.Description != ""
}

// Patch holds the fields to overwrite on Update. Nil fields keep the stored value.
type Patch struct {
	Title       *string
	Description *string
}

// String returns a pointer to s, for building a Patch.
func String(s string) *string {
	return &s
}

// apply merges the patch into t. The id is never touched.
func (p Patch) apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	return t
}

// Store is an ordered, in-memory sequence of tasks.
// It is owned by a single goroutine and does no locking.
type Store struct {
	tasks []Task
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{tasks: make([]Task, 0)}
}

// Create appends a task to the end of the store.
// No duplicate-id check is performed.
func (s *Store) Create(task Task) {
	s.tasks = append(s.tasks, task)
}

// Update merges patch into the task with the given id.
// Returns false, and changes nothing, if the id is not present.
func (s *Store) Update(id string, patch Patch) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = patch.apply(s.tasks[i])
			return true
		}
	}
	return false
}

// Delete removes the first task with the given id.
// Returns false if no task matched.
func (s *Store) Delete(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id string) (Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return Task{}, false
}

// At returns the task at display position i.
func (s *Store) At(i int) (Task, bool) {
	if i < 0 || i >= len(s.tasks) {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}
