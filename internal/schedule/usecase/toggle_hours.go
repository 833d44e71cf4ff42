package usecase

import (
	"context"

	"dayflow/internal/model"
	"dayflow/internal/schedule"
	"dayflow/internal/task"
)

// ToggleItem flips an item's completion flag. Completing a task-typed item
// completes its task, which in turn feeds the pattern learner; un-checking
// it puts the task back to scheduled.
func (uc *implUseCase) ToggleItem(ctx context.Context, sc model.Scope, itemID string) (schedule.DayOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, itemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleItem GetOneItem: %v", err)
		return schedule.DayOutput{}, err
	}
	if item.ID == "" {
		return schedule.DayOutput{}, schedule.ErrItemNotFound
	}
	if _, err := uc.ownedSchedule(ctx, sc.UserID, item.ScheduleID); err != nil {
		return schedule.DayOutput{}, err
	}

	item.Completed = !item.Completed
	if err := uc.repo.UpdateItem(ctx, item); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleItem UpdateItem: %v", err)
		return schedule.DayOutput{}, err
	}

	if item.Type == model.BlockTypeTask && item.TaskID != nil {
		if item.Completed {
			actual := item.DurationMinutes()
			if _, err := uc.taskUC.Complete(ctx, sc, task.CompleteInput{ID: *item.TaskID, ActualMinutes: actual}); err != nil {
				uc.l.Errorf(ctx, "uc.ToggleItem Complete task %s: %v", *item.TaskID, err)
				return schedule.DayOutput{}, err
			}
		} else {
			if err := uc.taskRepo.UpdateTaskStatuses(ctx, []string{*item.TaskID}, model.TaskStatusScheduled); err != nil {
				uc.l.Errorf(ctx, "uc.ToggleItem un-complete task %s: %v", *item.TaskID, err)
				return schedule.DayOutput{}, err
			}
		}
	}

	return uc.dayOutput(ctx, item.ScheduleID)
}

// UpdateHours changes a day's planned working hours and regenerates its
// layout with the new budget.
func (uc *implUseCase) UpdateHours(ctx context.Context, sc model.Scope, input schedule.UpdateHoursInput) (schedule.DayOutput, error) {
	if input.Hours <= 0 || input.Hours > 16 {
		return schedule.DayOutput{}, schedule.ErrInvalidHours
	}

	if !uc.busy.CompareAndSwap(false, true) {
		return schedule.DayOutput{}, schedule.ErrGenerationInProgress
	}
	defer uc.busy.Store(false)

	day := uc.cal.StartOfDay(input.Date)
	tasks, err := uc.tasksForDay(ctx, sc, day)
	if err != nil {
		return schedule.DayOutput{}, err
	}
	if len(tasks) == 0 {
		return schedule.DayOutput{}, schedule.ErrNoTasksToSchedule
	}

	return uc.generateDayForTasks(ctx, sc, day, tasks, input.Hours)
}
