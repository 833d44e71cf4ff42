package repository

import "time"

// GetOneScheduleOptions holds filter parameters for fetching one Schedule.
// All non-zero fields are applied as AND conditions.
type GetOneScheduleOptions struct {
	ID     string
	UserID string
	Date   time.Time
}

// UpdateScheduleStatsOptions holds the aggregate numbers for a schedule row.
type UpdateScheduleStatsOptions struct {
	ID           string
	TotalMinutes int
	WorkBlocks   int
	BreakBlocks  int
	Suggestions  string
}
