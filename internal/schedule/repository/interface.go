package repository

import (
	"context"
	"time"

	"dayflow/internal/model"
)

// Repository is the composed data-access interface for the schedule domain.
type Repository interface {
	ScheduleRepository
	ItemRepository
}

// ScheduleRepository defines access to Schedule rows.
type ScheduleRepository interface {
	// GetOneSchedule returns a zero-value Schedule (ID == "") when not found.
	GetOneSchedule(ctx context.Context, opt GetOneScheduleOptions) (model.Schedule, error)

	// GetOrCreateSchedule returns the (user, date) schedule, creating it on
	// first use. Never duplicates: (user, date) is unique.
	GetOrCreateSchedule(ctx context.Context, userID string, date time.Time) (model.Schedule, error)

	// UpdateScheduleStats writes the aggregate numbers for a schedule.
	UpdateScheduleStats(ctx context.Context, opt UpdateScheduleStatsOptions) error
}

// ItemRepository defines access to ScheduleItem rows.
type ItemRepository interface {
	// ListItems returns a schedule's items ordered by position, with task refs.
	ListItems(ctx context.Context, scheduleID string) ([]model.ScheduleItem, error)

	// ReplaceItems atomically swaps a schedule's items for the given set.
	ReplaceItems(ctx context.Context, scheduleID string, items []model.ScheduleItem) error

	// GetOneItem returns a zero-value item (ID == "") when not found.
	GetOneItem(ctx context.Context, itemID string) (model.ScheduleItem, error)

	// UpdateItem saves a single item row.
	UpdateItem(ctx context.Context, item model.ScheduleItem) error

	// ListItemsByTask returns all items referencing the task.
	ListItemsByTask(ctx context.Context, taskID string) ([]model.ScheduleItem, error)

	// DeleteItemsByTask removes all items referencing the task and returns
	// the IDs of the schedules they belonged to.
	DeleteItemsByTask(ctx context.Context, taskID string) ([]string, error)
}
