package schedule

import (
	"time"

	"dayflow/internal/model"
)

// GeneratedBlock is one block returned by the LLM for a day.
type GeneratedBlock struct {
	Title     string `json:"title"`
	Type      string `json:"type"` // task, break, lunch
	TaskID    string `json:"task_id,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// --- UseCase Inputs ---

// GenerateDayInput requests block generation for one date.
type GenerateDayInput struct {
	Date time.Time
}

// GenerateWeekInput requests distribution + generation over the remaining week.
type GenerateWeekInput struct {
	Now time.Time // zero value = time.Now()
}

// DropSourceKind tags what is being dragged.
type DropSourceKind string

const (
	DropSourceTask DropSourceKind = "task"
	DropSourceItem DropSourceKind = "item"
)

// DropTargetKind tags where it was released.
type DropTargetKind string

const (
	DropTargetDay  DropTargetKind = "day"
	DropTargetItem DropTargetKind = "item"
	DropTargetNone DropTargetKind = "none"
)

// DropInput is one completed drag gesture: a source entity released on a target.
type DropInput struct {
	SourceKind DropSourceKind
	SourceID   string // task id or schedule item id

	TargetKind   DropTargetKind
	TargetDate   time.Time // for day targets, and the day owning a target item
	TargetItemID string    // for item targets
}

// UpdateHoursInput changes a day's planned working hours and regenerates it.
type UpdateHoursInput struct {
	Date  time.Time
	Hours int
}

// --- UseCase Outputs ---

// DayOutput is one schedule with its ordered items.
type DayOutput struct {
	Schedule model.Schedule
	Items    []model.ScheduleItem
}

// GenerateWeekOutput reports per-day results of a week generation.
type GenerateWeekOutput struct {
	Days   []DayOutput
	Failed map[string]string // date → error message, for days that failed
}

// DropOutput reports the result of a drop gesture. Applied is false for
// no-op drops (no valid target, or released back onto the origin).
type DropOutput struct {
	Applied bool
	Days    []DayOutput // every day whose items were recomputed
}

// DayStats are the aggregate numbers stored on a Schedule row.
type DayStats struct {
	TotalMinutes int
	WorkBlocks   int
	BreakBlocks  int
}
