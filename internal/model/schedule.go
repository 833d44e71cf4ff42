package model

import (
	"time"

	"dayflow/pkg/timemath"
)

// BlockType classifies a schedule item.
type BlockType string

const (
	BlockTypeTask  BlockType = "task"
	BlockTypeBreak BlockType = "break"
	BlockTypeLunch BlockType = "lunch"
)

// Schedule is one user's plan for one calendar date. Unique per (user, date).
type Schedule struct {
	ID           string    `gorm:"primaryKey"`
	UserID       string    `gorm:"index:idx_schedules_user_date,unique"`
	Date         time.Time `gorm:"index:idx_schedules_user_date,unique"`
	TotalMinutes int
	WorkBlocks   int
	BreakBlocks  int
	Suggestions  string // newline-separated advisory strings
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []ScheduleItem `gorm:"foreignKey:ScheduleID"`
}

// ScheduleItem is one timed block within a schedule, ordered by Position.
type ScheduleItem struct {
	ID         string `gorm:"primaryKey"`
	ScheduleID string `gorm:"index"`
	Position   int
	Type       BlockType
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Title      string
	Completed  bool
	TaskID     *string `gorm:"index"` // nil for break/lunch
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Task *Task `gorm:"foreignKey:TaskID"`
}

// DurationMinutes returns the block length derived from its times.
// Malformed times count as zero.
func (i ScheduleItem) DurationMinutes() int {
	start, err := timemath.ToMinutes(i.StartTime)
	if err != nil {
		return 0
	}
	end, err := timemath.ToMinutes(i.EndTime)
	if err != nil || end <= start {
		return 0
	}
	return end - start
}
