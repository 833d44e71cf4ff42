package repository

import (
	"context"

	"dayflow/internal/model"
)

// Repository defines data access for tasks.
type Repository interface {
	// InsertTask persists one task and returns it.
	InsertTask(ctx context.Context, t model.Task) (model.Task, error)

	// GetOneTask returns a zero-value Task (ID == "") when not found.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)

	// ListTasks applies the filters and returns tasks ordered by priority
	// tier (high first) then creation time ascending.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// UpdateTask saves a full task row.
	UpdateTask(ctx context.Context, t model.Task) error

	// DeleteTask removes a task row.
	DeleteTask(ctx context.Context, id string) error

	// HasActiveTitle reports whether the user already has a non-completed
	// task with this title, case-insensitive.
	HasActiveTitle(ctx context.Context, userID, title string) (bool, error)

	// MarkTasksScheduled flips the given tasks to status scheduled.
	MarkTasksScheduled(ctx context.Context, ids []string) error

	// ListOverdueScheduledTaskIDs returns ids of scheduled tasks whose
	// incomplete schedule items sit on days strictly before the given date.
	// Empty userID means all users.
	ListOverdueScheduledTaskIDs(ctx context.Context, opt OverdueOptions) ([]string, error)

	// UpdateTaskStatuses bulk-updates status for the given task ids.
	UpdateTaskStatuses(ctx context.Context, ids []string, status model.TaskStatus) error
}
