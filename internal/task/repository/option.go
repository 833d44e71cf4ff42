package repository

import (
	"time"

	"dayflow/internal/model"
)

// GetOneTaskOptions holds filter parameters for fetching one task.
// All non-zero fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions filters the task list.
type ListTasksOptions struct {
	UserID   string
	Statuses []model.TaskStatus
}

// OverdueOptions scopes the rollover candidate query.
type OverdueOptions struct {
	UserID string    // empty = all users
	Before time.Time // start of today; items on earlier days qualify
}
