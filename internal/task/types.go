package task

import (
	"time"

	"dayflow/internal/model"
)

// CreateFromTextInput carries raw natural-language input for LLM parsing.
type CreateFromTextInput struct {
	Text string
}

// CreateFromTextOutput reports the tasks created from one text submission.
type CreateFromTextOutput struct {
	Tasks []model.Task
}

// CreateInput creates one task with explicit fields.
type CreateInput struct {
	Title            string
	Description      string
	Priority         model.Priority
	EstimatedMinutes int
	DueDate          *time.Time
}

// ListInput filters the task list. Empty Statuses means the schedulable
// set: pending, rolled_over and scheduled.
type ListInput struct {
	Statuses []model.TaskStatus
}

// ListOutput is the filtered task list, ordered by priority tier then
// creation time.
type ListOutput struct {
	Tasks []model.Task
}

// UpdateInput mutates a task in place. Nil fields are left untouched;
// ClearDueDate removes an existing due date.
type UpdateInput struct {
	ID               string
	Title            *string
	Description      *string
	Priority         *model.Priority
	EstimatedMinutes *int
	DueDate          *time.Time
	ClearDueDate     bool
}

// CompleteInput checks a task off. ActualMinutes of 0 falls back to the
// task's estimate.
type CompleteInput struct {
	ID            string
	ActualMinutes int
}

// RolloverInput triggers rollover of incomplete scheduled tasks from days
// before Now. Zero Now means time.Now().
type RolloverInput struct {
	Now time.Time
}

// RolloverOutput reports how many tasks were rolled over.
type RolloverOutput struct {
	RolledOver int
}
