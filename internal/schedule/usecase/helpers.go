package usecase

import (
	"context"
	"strings"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/schedule"
	repo "dayflow/internal/schedule/repository"
)

// dayOutput loads the current state of one schedule.
func (uc *implUseCase) dayOutput(ctx context.Context, scheduleID string) (schedule.DayOutput, error) {
	sched, err := uc.repo.GetOneSchedule(ctx, repo.GetOneScheduleOptions{ID: scheduleID})
	if err != nil {
		return schedule.DayOutput{}, err
	}
	items, err := uc.repo.ListItems(ctx, scheduleID)
	if err != nil {
		return schedule.DayOutput{}, err
	}
	return schedule.DayOutput{Schedule: sched, Items: items}, nil
}

// persistDay recomputes contiguous times over items, writes them and the
// aggregate stats, and returns the fresh day.
func (uc *implUseCase) persistDay(ctx context.Context, sched model.Schedule, items []model.ScheduleItem) (schedule.DayOutput, error) {
	ptrs := make([]*model.ScheduleItem, len(items))
	for i := range items {
		ptrs[i] = &items[i]
	}
	stats := schedule.RecomputeDay(ptrs, uc.cfg.DayStart)

	if err := uc.repo.ReplaceItems(ctx, sched.ID, items); err != nil {
		return schedule.DayOutput{}, err
	}
	if err := uc.repo.UpdateScheduleStats(ctx, repo.UpdateScheduleStatsOptions{
		ID:           sched.ID,
		TotalMinutes: stats.TotalMinutes,
		WorkBlocks:   stats.WorkBlocks,
		BreakBlocks:  stats.BreakBlocks,
		Suggestions:  sched.Suggestions,
	}); err != nil {
		return schedule.DayOutput{}, err
	}
	return uc.dayOutput(ctx, sched.ID)
}

// ownedSchedule verifies the schedule belongs to the user.
func (uc *implUseCase) ownedSchedule(ctx context.Context, userID, scheduleID string) (model.Schedule, error) {
	sched, err := uc.repo.GetOneSchedule(ctx, repo.GetOneScheduleOptions{ID: scheduleID, UserID: userID})
	if err != nil {
		return model.Schedule{}, err
	}
	if sched.ID == "" {
		return model.Schedule{}, schedule.ErrScheduleNotFound
	}
	return sched, nil
}

// titlesMatch is the fuzzy fallback for mapping a generated block back to a
// task: case-insensitive substring containment in either direction.
func titlesMatch(blockTitle, taskTitle string) bool {
	a := strings.ToLower(strings.TrimSpace(blockTitle))
	b := strings.ToLower(strings.TrimSpace(taskTitle))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
