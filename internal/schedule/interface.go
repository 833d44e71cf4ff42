package schedule

import (
	"context"
	"time"

	"dayflow/internal/model"
)

// UseCase is the schedule domain surface: day generation, week distribution,
// and drop-gesture resolution.
type UseCase interface {
	// GetDay returns the schedule and ordered items for one date.
	GetDay(ctx context.Context, sc model.Scope, date time.Time) (DayOutput, error)

	// GenerateDay arranges the date's scheduled tasks into timed blocks via
	// the LLM and persists the result, replacing any previous layout.
	GenerateDay(ctx context.Context, sc model.Scope, input GenerateDayInput) (DayOutput, error)

	// GenerateWeek distributes pending and rolled-over tasks across the
	// remaining weekdays and generates each day independently.
	GenerateWeek(ctx context.Context, sc model.Scope, input GenerateWeekInput) (GenerateWeekOutput, error)

	// Drop resolves one completed drag gesture.
	Drop(ctx context.Context, sc model.Scope, input DropInput) (DropOutput, error)

	// ToggleItem flips an item's completion flag. Completing a task-typed
	// item completes its task (and feeds the pattern learner).
	ToggleItem(ctx context.Context, sc model.Scope, itemID string) (DayOutput, error)

	// UpdateHours changes a day's planned working hours and regenerates it.
	UpdateHours(ctx context.Context, sc model.Scope, input UpdateHoursInput) (DayOutput, error)
}
