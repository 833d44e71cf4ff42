package usecase

import (
	"context"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/pattern"
	"dayflow/internal/task"
	repo "dayflow/internal/task/repository"
)

// Complete marks a task completed, stamps the actual duration, checks off
// any schedule items still pointing at it, and feeds the pattern learner.
// Completing an already-completed task is a no-op.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input task.CompleteInput) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	if t.Status == model.TaskStatusCompleted {
		return t, nil
	}

	actual := input.ActualMinutes
	if actual <= 0 {
		actual = t.EstimatedMinutes
	}

	now := time.Now().In(uc.cal.Location())
	t.Status = model.TaskStatusCompleted
	t.CompletedAt = &now
	t.ActualMinutes = actual

	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		return model.Task{}, err
	}

	items, err := uc.scheduleRepo.ListItemsByTask(ctx, t.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete ListItemsByTask: %v", err)
		return model.Task{}, err
	}
	for _, item := range items {
		if item.Completed {
			continue
		}
		item.Completed = true
		if err := uc.scheduleRepo.UpdateItem(ctx, item); err != nil {
			uc.l.Errorf(ctx, "uc.Complete UpdateItem %s: %v", item.ID, err)
			return model.Task{}, err
		}
	}

	// Learning is advisory; a pattern failure never un-completes the task.
	keywords := pattern.ExtractKeywords(t.Title, t.Description)
	if len(keywords) > 0 {
		_, err := uc.patternUC.RecordCompletion(ctx, sc, pattern.RecordCompletionInput{
			Keywords:      keywords,
			ActualMinutes: actual,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.Complete RecordCompletion (non-fatal): %v", err)
		}
	}

	return t, nil
}
