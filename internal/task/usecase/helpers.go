package usecase

import (
	"context"
	"fmt"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/schedule"
	schedRepo "dayflow/internal/schedule/repository"
	"dayflow/pkg/gemini"
	"dayflow/pkg/llmprovider"
)

const (
	minEstimatedMinutes     = 15
	defaultEstimatedMinutes = 60
)

// parseInputWithLLM sends raw user text to the provider chain and returns
// parsed tasks.
func (uc *implUseCase) parseInputWithLLM(ctx context.Context, rawText string) ([]parsedTask, error) {
	nowStr := time.Now().In(uc.cal.Location()).Format(time.RFC3339)
	prompt := gemini.BuildTaskParsingPrompt(rawText, nowStr)

	text, err := uc.llm.Generate(ctx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: 0.2, // low temperature for deterministic JSON output
		MaxTokens:   2048,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM request failed: %w", err)
	}

	var tasks []parsedTask
	if err := llmprovider.DecodeJSON(text, &tasks); err != nil {
		uc.l.Errorf(ctx, "failed to parse LLM response: %v raw=%q", err, text)
		return nil, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}
	return tasks, nil
}

// normalize fills defaults and resolves the due date string into planner time.
func (uc *implUseCase) normalize(p parsedTask) (model.Task, error) {
	priority := model.Priority(p.Priority)
	if !priority.Valid() {
		priority = model.PriorityMedium
	}

	minutes := p.EstimatedMinutes
	if minutes <= 0 {
		minutes = defaultEstimatedMinutes
	}
	if minutes < minEstimatedMinutes {
		minutes = minEstimatedMinutes
	}

	var due *time.Time
	if p.DueDate != "" {
		d, err := time.ParseInLocation("2006-01-02", p.DueDate, uc.cal.Location())
		if err != nil {
			return model.Task{}, fmt.Errorf("bad due_date %q: %w", p.DueDate, err)
		}
		due = &d
	}

	return model.Task{
		Title:            p.Title,
		Description:      p.Description,
		Priority:         priority,
		EstimatedMinutes: minutes,
		DueDate:          due,
		Status:           model.TaskStatusPending,
	}, nil
}

// recomputeSchedules re-walks contiguous times and stats for each schedule
// whose items changed underneath it.
func (uc *implUseCase) recomputeSchedules(ctx context.Context, scheduleIDs []string) error {
	for _, id := range scheduleIDs {
		sched, err := uc.scheduleRepo.GetOneSchedule(ctx, schedRepo.GetOneScheduleOptions{ID: id})
		if err != nil {
			return err
		}

		items, err := uc.scheduleRepo.ListItems(ctx, id)
		if err != nil {
			return err
		}

		ptrs := make([]*model.ScheduleItem, len(items))
		for i := range items {
			ptrs[i] = &items[i]
		}
		stats := schedule.RecomputeDay(ptrs, uc.dayStart)

		if err := uc.scheduleRepo.ReplaceItems(ctx, id, items); err != nil {
			return err
		}
		if err := uc.scheduleRepo.UpdateScheduleStats(ctx, schedRepo.UpdateScheduleStatsOptions{
			ID:           id,
			TotalMinutes: stats.TotalMinutes,
			WorkBlocks:   stats.WorkBlocks,
			BreakBlocks:  stats.BreakBlocks,
			Suggestions:  sched.Suggestions,
		}); err != nil {
			return err
		}
	}
	return nil
}
