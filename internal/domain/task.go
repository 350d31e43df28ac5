// Package domain contains core business entities and interfaces.
package domain

// Task represents a single to-do item.
// Field order is the persisted key order.
type Task struct {
	ID          uint32 `json:"id" yaml:"id"`                   // Position-derived ID (1-based)
	Description string `json:"description" yaml:"description"` // Free text, not validated
	Done        bool   `json:"done" yaml:"done"`               // Only transitions false -> true
}

// Status returns the display status of the task.
func (t *Task) Status() Status {
	if t.Done {
		return StatusDone
	}
	return StatusPending
}

// TaskList is the ordered set of tasks owned by one session.
// Insertion order is display order and persisted order.
type TaskList struct {
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// NewTaskList returns an empty task list.
func NewTaskList() *TaskList {
	return &TaskList{Tasks: []Task{}}
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.Tasks)
}

// Add appends a new pending task and returns a copy of it.
// The ID is the list length plus one; nothing is ever removed,
// so IDs stay unique within the list.
func (l *TaskList) Add(description string) Task {
	task := Task{
		ID:          uint32(len(l.Tasks)) + 1, //nolint:gosec // list never approaches MaxUint32
		Description: description,
	}
	l.Tasks = append(l.Tasks, task)
	return task
}

// Find returns the first task with the given ID in list order, or nil.
func (l *TaskList) Find(id uint32) *Task {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			return &l.Tasks[i]
		}
	}
	return nil
}

// MarkDone marks the first task with the given ID as done.
// Returns ErrAlreadyDone if it is already done and ErrTaskNotFound if
// no task has that ID. The list is unchanged on error.
func (l *TaskList) MarkDone(id uint32) error {
	task := l.Find(id)
	if task == nil {
		return ErrTaskNotFound
	}
	if !task.Status().CanTransitionTo(StatusDone) {
		return ErrAlreadyDone
	}
	task.Done = true
	return nil
}

// DoneCount returns the number of completed tasks.
func (l *TaskList) DoneCount() int {
	n := 0
	for _, t := range l.Tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the list.
func (l *TaskList) Clone() *TaskList {
	tasks := make([]Task, len(l.Tasks))
	copy(tasks, l.Tasks)
	return &TaskList{Tasks: tasks}
}
