package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"dayflow/internal/model"
	"dayflow/internal/pattern"
	"dayflow/internal/schedule"
	repo "dayflow/internal/schedule/repository"
	taskRepo "dayflow/internal/task/repository"
	"dayflow/pkg/gcalendar"
	"dayflow/pkg/gemini"
	"dayflow/pkg/llmprovider"
	"dayflow/pkg/timemath"
)

// GetDay returns the schedule and ordered items for one date.
func (uc *implUseCase) GetDay(ctx context.Context, sc model.Scope, date time.Time) (schedule.DayOutput, error) {
	day := uc.cal.StartOfDay(date)
	sched, err := uc.repo.GetOneSchedule(ctx, repo.GetOneScheduleOptions{UserID: sc.UserID, Date: day})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetDay GetOneSchedule: %v", err)
		return schedule.DayOutput{}, err
	}
	if sched.ID == "" {
		return schedule.DayOutput{}, schedule.ErrScheduleNotFound
	}
	return uc.dayOutput(ctx, sched.ID)
}

// GenerateDay arranges one date's tasks into timed blocks via the LLM and
// persists the result, replacing any previous layout for that date.
func (uc *implUseCase) GenerateDay(ctx context.Context, sc model.Scope, input schedule.GenerateDayInput) (schedule.DayOutput, error) {
	day := uc.cal.StartOfDay(input.Date)

	tasks, err := uc.tasksForDay(ctx, sc, day)
	if err != nil {
		return schedule.DayOutput{}, err
	}
	if len(tasks) == 0 {
		return schedule.DayOutput{}, schedule.ErrNoTasksToSchedule
	}

	return uc.generateDayForTasks(ctx, sc, day, tasks, uc.cfg.DailyHours)
}

// tasksForDay gathers the tasks that belong on a date: tasks already placed
// on its schedule, plus unscheduled tasks due that day.
func (uc *implUseCase) tasksForDay(ctx context.Context, sc model.Scope, day time.Time) ([]model.Task, error) {
	seen := make(map[string]bool)
	var tasks []model.Task

	sched, err := uc.repo.GetOneSchedule(ctx, repo.GetOneScheduleOptions{UserID: sc.UserID, Date: day})
	if err != nil {
		return nil, err
	}
	if sched.ID != "" {
		items, err := uc.repo.ListItems(ctx, sched.ID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if item.Task != nil && !item.Completed && !seen[item.Task.ID] {
				seen[item.Task.ID] = true
				tasks = append(tasks, *item.Task)
			}
		}
	}

	pending, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{
		UserID:   sc.UserID,
		Statuses: []model.TaskStatus{model.TaskStatusPending, model.TaskStatusRolledOver},
	})
	if err != nil {
		return nil, err
	}
	for _, t := range pending {
		if t.DueDate != nil && uc.cal.SameDate(*t.DueDate, day) && !seen[t.ID] {
			seen[t.ID] = true
			tasks = append(tasks, t)
		}
	}

	sortByPriority(tasks)
	return tasks, nil
}

// generateDayForTasks is the single-day core shared by GenerateDay,
// GenerateWeek and UpdateHours.
func (uc *implUseCase) generateDayForTasks(ctx context.Context, sc model.Scope, day time.Time, tasks []model.Task, plannedHours int) (schedule.DayOutput, error) {
	blocks, err := uc.parseBlocksWithLLM(ctx, sc, day, tasks, plannedHours)
	if err != nil {
		return schedule.DayOutput{}, err
	}

	items, matchedIDs := uc.assembleItems(blocks, tasks)
	if len(items) == 0 {
		return schedule.DayOutput{}, schedule.ErrBlocksUnparsable
	}

	sched, err := uc.repo.GetOrCreateSchedule(ctx, sc.UserID, day)
	if err != nil {
		uc.l.Errorf(ctx, "uc.generateDayForTasks GetOrCreateSchedule: %v", err)
		return schedule.DayOutput{}, err
	}

	out, err := uc.persistDay(ctx, sched, items)
	if err != nil {
		uc.l.Errorf(ctx, "uc.generateDayForTasks persistDay: %v", err)
		return schedule.DayOutput{}, err
	}

	if err := uc.taskRepo.MarkTasksScheduled(ctx, matchedIDs); err != nil {
		uc.l.Errorf(ctx, "uc.generateDayForTasks MarkTasksScheduled: %v", err)
		return schedule.DayOutput{}, err
	}

	uc.exportToCalendar(ctx, day, out.Items)

	uc.l.Infof(ctx, "generated day %s: %d items, %d tasks matched", dateKey(day), len(out.Items), len(matchedIDs))
	return out, nil
}

// parseBlocksWithLLM asks the provider chain for a day layout and decodes it.
func (uc *implUseCase) parseBlocksWithLLM(ctx context.Context, sc model.Scope, day time.Time, tasks []model.Task, plannedHours int) ([]schedule.GeneratedBlock, error) {
	prompts := make([]gemini.DayTaskPrompt, len(tasks))
	for i, t := range tasks {
		prompts[i] = gemini.DayTaskPrompt{
			ID:               t.ID,
			Title:            t.Title,
			Priority:         string(t.Priority),
			EstimatedMinutes: t.EstimatedMinutes,
		}
	}

	prompt := gemini.BuildScheduleBlocksPrompt(
		dateKey(day),
		timemath.ToTimeString(uc.cfg.DayStart),
		plannedHours,
		prompts,
		uc.patternHints(ctx, sc, tasks),
	)

	text, err := uc.llm.Generate(ctx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   2048,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM request failed: %w", err)
	}

	var blocks []schedule.GeneratedBlock
	if err := llmprovider.DecodeJSON(text, &blocks); err != nil {
		uc.l.Errorf(ctx, "failed to parse LLM blocks: %v raw=%q", err, text)
		return nil, fmt.Errorf("%w: %v", schedule.ErrBlocksUnparsable, err)
	}
	return blocks, nil
}

// patternHints selects learned patterns relevant to the day's tasks.
// Advisory context only; failures degrade to no hints.
func (uc *implUseCase) patternHints(ctx context.Context, sc model.Scope, tasks []model.Task) []gemini.PatternHint {
	out, err := uc.patternUC.List(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "patternHints List (non-fatal): %v", err)
		return nil
	}

	var hints []gemini.PatternHint
	for _, p := range out.Patterns {
		for _, t := range tasks {
			if p.MatchesAny(pattern.ExtractKeywords(t.Title, t.Description)) {
				hints = append(hints, gemini.PatternHint{
					Keywords:       p.Keywords,
					AverageMinutes: p.AverageMinutes,
					CompletionRate: p.CompletionRate,
				})
				break
			}
		}
		if len(hints) >= 5 {
			break
		}
	}
	return hints
}

// assembleItems maps generated blocks back to tasks. The echoed task_id wins;
// fuzzy title matching is the fallback. Each task matches at most one block.
func (uc *implUseCase) assembleItems(blocks []schedule.GeneratedBlock, tasks []model.Task) ([]model.ScheduleItem, []string) {
	byID := make(map[string]*model.Task, len(tasks))
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
	}
	claimed := make(map[string]bool)

	var items []model.ScheduleItem
	var matchedIDs []string

	for _, b := range blocks {
		blockType := model.BlockType(b.Type)
		switch blockType {
		case model.BlockTypeTask, model.BlockTypeBreak, model.BlockTypeLunch:
		default:
			blockType = model.BlockTypeTask
		}

		item := model.ScheduleItem{
			ID:        uuid.NewString(),
			Type:      blockType,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Title:     b.Title,
		}

		if blockType == model.BlockTypeTask {
			var matched *model.Task
			if t, ok := byID[b.TaskID]; ok && !claimed[t.ID] {
				matched = t
			} else {
				for i := range tasks {
					if !claimed[tasks[i].ID] && titlesMatch(b.Title, tasks[i].Title) {
						matched = &tasks[i]
						break
					}
				}
			}
			if matched != nil {
				claimed[matched.ID] = true
				matchedIDs = append(matchedIDs, matched.ID)
				id := matched.ID
				item.TaskID = &id
				item.Title = matched.Title // block titles drift; the task's title is canonical
			}
		}

		items = append(items, item)
	}
	return items, matchedIDs
}

// exportToCalendar mirrors the day's task blocks as calendar events.
// Failures are logged and swallowed: export is a convenience, not a write
// the schedule depends on.
func (uc *implUseCase) exportToCalendar(ctx context.Context, day time.Time, items []model.ScheduleItem) {
	if uc.calendar == nil {
		return
	}

	for _, item := range items {
		if item.Type != model.BlockTypeTask {
			continue
		}
		startMin, err := timemath.ToMinutes(item.StartTime)
		if err != nil {
			continue
		}
		endMin, err := timemath.ToMinutes(item.EndTime)
		if err != nil || endMin <= startMin {
			continue
		}

		start := day.Add(time.Duration(startMin) * time.Minute)
		end := day.Add(time.Duration(endMin) * time.Minute)
		_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID: uc.cfg.CalendarID,
			Summary:    item.Title,
			StartTime:  start,
			EndTime:    end,
			Timezone:   uc.cfg.Timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "calendar export failed for %q (non-fatal): %v", item.Title, err)
		}
	}
}

// sortByPriority orders tasks by priority tier, stable within a tier.
func sortByPriority(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority.Tier() < tasks[j].Priority.Tier()
	})
}
