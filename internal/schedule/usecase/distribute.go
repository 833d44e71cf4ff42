package usecase

import (
	"context"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/schedule"
	taskRepo "dayflow/internal/task/repository"
	"dayflow/pkg/timemath"
)

// GenerateWeek distributes pending and rolled-over tasks across the
// remaining weekdays and generates each day independently. A failure on one
// day does not roll back the others; failed days are reported per date.
func (uc *implUseCase) GenerateWeek(ctx context.Context, sc model.Scope, input schedule.GenerateWeekInput) (schedule.GenerateWeekOutput, error) {
	if !uc.busy.CompareAndSwap(false, true) {
		return schedule.GenerateWeekOutput{}, schedule.ErrGenerationInProgress
	}
	defer uc.busy.Store(false)

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	days := uc.cal.RemainingWeekdays(now)
	if len(days) == 0 {
		return schedule.GenerateWeekOutput{}, schedule.ErrNoDaysToSchedule
	}

	tasks, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{
		UserID:   sc.UserID,
		Statuses: []model.TaskStatus{model.TaskStatusPending, model.TaskStatusRolledOver},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateWeek ListTasks: %v", err)
		return schedule.GenerateWeekOutput{}, err
	}
	if len(tasks) == 0 {
		return schedule.GenerateWeekOutput{}, schedule.ErrNoTasksToSchedule
	}

	buckets := distributeTasks(tasks, days, uc.cal)

	out := schedule.GenerateWeekOutput{Failed: make(map[string]string)}
	for i, day := range days {
		if len(buckets[i]) == 0 {
			continue
		}
		dayOut, err := uc.generateDayForTasks(ctx, sc, day, buckets[i], uc.cfg.DailyHours)
		if err != nil {
			uc.l.Errorf(ctx, "uc.GenerateWeek day %s: %v", dateKey(day), err)
			out.Failed[dateKey(day)] = err.Error()
			continue
		}
		out.Days = append(out.Days, dayOut)
	}
	return out, nil
}

// distributeTasks assigns tasks to days. Due-dated tasks are pushed as late
// as the deadline allows; already-due tasks land on the earliest day. Tasks
// without a due date go to the currently least-loaded day, earliest on ties.
// Each bucket comes back priority-sorted. Pure function.
func distributeTasks(tasks []model.Task, days []time.Time, cal *timemath.Calendar) [][]model.Task {
	buckets := make([][]model.Task, len(days))

	var dued, undated []model.Task
	for _, t := range tasks {
		if t.DueDate != nil {
			dued = append(dued, t)
		} else {
			undated = append(undated, t)
		}
	}
	sortByPriority(dued)
	sortByPriority(undated)

	for _, t := range dued {
		due := cal.StartOfDay(*t.DueDate)

		idx := 0
		if due.After(days[0]) {
			// Latest remaining day that does not miss the deadline.
			for i := len(days) - 1; i >= 0; i-- {
				if !days[i].After(due) {
					idx = i
					break
				}
			}
		}
		buckets[idx] = append(buckets[idx], t)
	}

	for _, t := range undated {
		idx := 0
		for i := 1; i < len(days); i++ {
			if len(buckets[i]) < len(buckets[idx]) {
				idx = i
			}
		}
		buckets[idx] = append(buckets[idx], t)
	}

	for i := range buckets {
		sortByPriority(buckets[i])
	}
	return buckets
}
