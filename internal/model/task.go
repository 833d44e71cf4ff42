package model

import "time"

// Priority is a task priority tier.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Tier maps priority to its sort tier: high=0, medium=1, low=2.
// Unknown values sort last.
func (p Priority) Tier() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// TaskStatus is the task lifecycle state.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusScheduled  TaskStatus = "scheduled"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusRolledOver TaskStatus = "rolled_over"
)

// Task is a user's unit of work.
type Task struct {
	ID               string `gorm:"primaryKey"`
	UserID           string `gorm:"index"`
	Title            string
	Description      string
	Priority         Priority   `gorm:"index"`
	EstimatedMinutes int        // 0 = no estimate
	DueDate          *time.Time // date-only semantics, midnight in planner tz
	Status           TaskStatus `gorm:"index"`
	CompletedAt      *time.Time
	ActualMinutes    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
