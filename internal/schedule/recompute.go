package schedule

import (
	"dayflow/internal/model"
	"dayflow/pkg/timemath"
)

// RecomputeDay rewrites positions and contiguous start/end times for a day's
// items from dayStart (minutes from midnight), and returns the aggregate
// stats for the schedule row. Pure except for the item mutations; callers
// persist. Total minutes count work blocks only.
func RecomputeDay(items []*model.ScheduleItem, dayStart int) DayStats {
	durations := make([]int, len(items))
	for i, item := range items {
		d := item.DurationMinutes()
		if d <= 0 {
			d = defaultBlockMinutes(item.Type)
		}
		durations[i] = d
	}

	spans := timemath.ContiguousSpans(durations, dayStart)

	var stats DayStats
	for i, item := range items {
		item.Position = i
		item.StartTime = spans[i].Start
		item.EndTime = spans[i].End

		switch item.Type {
		case model.BlockTypeTask:
			stats.WorkBlocks++
			stats.TotalMinutes += durations[i]
		case model.BlockTypeBreak, model.BlockTypeLunch:
			stats.BreakBlocks++
		}
	}
	return stats
}

// defaultBlockMinutes backfills a sane duration when an item carries
// degenerate times (e.g. freshly dropped with no estimate).
func defaultBlockMinutes(t model.BlockType) int {
	switch t {
	case model.BlockTypeBreak:
		return 15
	case model.BlockTypeLunch:
		return 60
	}
	return 30
}
