package domain

// Status represents the completion state of a task.
type Status string

const (
	StatusPending Status = "pending" // Not yet completed
	StatusDone    Status = "done"    // Completed
)

// transitions defines the allowed status transitions.
// A task never reverts once done.
var transitions = map[Status][]Status{
	StatusPending: {StatusDone},
	StatusDone:    {},
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusDone
}

// Glyph returns the checkbox shown in task listings.
func (s Status) Glyph() string {
	if s == StatusDone {
		return "[✓]"
	}
	return "[ ]"
}
