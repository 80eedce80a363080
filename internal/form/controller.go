// Package form implements the create/edit modal state machine.
//
// A Controller is either Closed, Creating a new task or Editing an existing
// one. While open it holds an edit buffer; Save commits the buffer to the
// store when both fields are non-empty and otherwise leaves everything as it
// was without reporting anything.
package form

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todoboard/internal/todo"
)

// Mode is the modal state.
type Mode int

const (
	Closed Mode = iota
	Creating
	Editing
)

func (m Mode) String() string {
	switch m {
	case Closed:
		return "closed"
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Buffer is the in-progress form input. ID is set only while editing.
type Buffer struct {
	ID          string
	Title       string
	Description string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for intent tracing.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller owns the modal state and the edit buffer, and is the only
// writer of the store.
type Controller struct {
	store  *todo.Store
	ids    todo.IDGenerator
	logger *log.Logger
	mode   Mode
	buf    Buffer
}

// New returns a closed controller over store.
func New(store *todo.Store, ids todo.IDGenerator, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		ids:    ids,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the current state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Open reports whether the modal is visible.
func (c *Controller) Open() bool {
	return c.mode != Closed
}

// Buffer returns a copy of the edit buffer.
func (c *Controller) Buffer() Buffer {
	return c.buf
}

// EditingID returns the id of the task being edited, or "" when not editing.
func (c *Controller) EditingID() string {
	if c.mode != Editing {
		return ""
	}
	return c.buf.ID
}

// Store returns the underlying task store.
func (c *Controller) Store() *todo.Store {
	return c.store
}

// OpenCreate moves Closed -> Creating with an empty buffer.
// Returns false if the modal is already open.
func (c *Controller) OpenCreate() bool {
	if c.mode != Closed {
		return false
	}
	c.mode = Creating
	c.buf = Buffer{}
	return true
}

// OpenEdit moves Closed -> Editing(task.ID) with the buffer seeded from task.
// Returns false if the modal is already open.
func (c *Controller) OpenEdit(task todo.Task) bool {
	if c.mode != Closed {
		return false
	}
	c.mode = Editing
	c.buf = Buffer{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
	}
	return true
}

// SetTitle replaces the buffer title. Ignored while closed.
func (c *Controller) SetTitle(title string) {
	if c.mode == Closed {
		return
	}
	c.buf.Title = title
}

// SetDescription replaces the buffer description. Ignored while closed.
func (c *Controller) SetDescription(description string) {
	if c.mode == Closed {
		return
	}
	c.buf.Description = description
}

// Cancel discards the buffer and closes the modal. The store is not touched.
func (c *Controller) Cancel() {
	if c.mode == Closed {
		return
	}
	c.logger.Debug("form cancelled", "mode", c.mode)
	c.close()
}

// Save commits the buffer and closes the modal.
//
// If either field is empty nothing happens and saved is false. A failure to
// generate an id for a new task is returned as an error; the controller
// stays in Creating with its buffer intact.
func (c *Controller) Save() (saved bool, err error) {
	if c.mode == Closed {
		return false, nil
	}
	if !c.pending().Complete() {
		c.logger.Debug("save refused", "mode", c.mode, "title_empty", c.buf.Title == "", "description_empty", c.buf.Description == "")
		return false, nil
	}

	switch c.mode {
	case Creating:
		id, err := c.ids.NewID()
		if err != nil {
			c.logger.Error("create aborted", "err", err)
			return false, fmt.Errorf("create task: %w", err)
		}
		c.store.Create(todo.Task{
			ID:          id,
			Title:       c.buf.Title,
			Description: c.buf.Description,
		})
		c.logger.Debug("task created", "task_id", id)
	case Editing:
		title, description := c.buf.Title, c.buf.Description
		if c.store.Update(c.buf.ID, todo.Patch{Title: &title, Description: &description}) {
			c.logger.Debug("task updated", "task_id", c.buf.ID)
		} else {
			c.logger.Debug("task to update not found", "task_id", c.buf.ID)
		}
	}

	c.close()
	return true, nil
}

// Delete removes the task with id from the store. Only honoured while the
// modal is closed; returns whether a task was removed.
func (c *Controller) Delete(id string) bool {
	if c.mode != Closed {
		return false
	}
	if !c.store.Delete(id) {
		return false
	}
	c.logger.Debug("task deleted", "task_id", id)
	return true
}

// pending is the buffer as the task it would commit.
func (c *Controller) pending() todo.Task {
	return todo.Task{ID: c.buf.ID, Title: c.buf.Title, Description: c.buf.Description}
}

func (c *Controller) close() {
	c.mode = Closed
	c.buf = Buffer{}
}
