package usecase

import (
	"context"
	"strings"

	"dayflow/internal/model"
	"dayflow/internal/task"
	repo "dayflow/internal/task/repository"
)

// Update applies a partial in-place edit to a task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	if input.Title != nil {
		newTitle := strings.TrimSpace(*input.Title)
		if newTitle == "" {
			return model.Task{}, task.ErrEmptyInput
		}
		if !strings.EqualFold(newTitle, t.Title) {
			dup, err := uc.repo.HasActiveTitle(ctx, sc.UserID, newTitle)
			if err != nil {
				return model.Task{}, err
			}
			if dup {
				return model.Task{}, task.ErrDuplicateTitle
			}
		}
		t.Title = newTitle
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return model.Task{}, task.ErrInvalidPriority
		}
		t.Priority = *input.Priority
	}
	if input.EstimatedMinutes != nil && *input.EstimatedMinutes > 0 {
		t.EstimatedMinutes = *input.EstimatedMinutes
	}
	if input.ClearDueDate {
		t.DueDate = nil
	} else if input.DueDate != nil {
		t.DueDate = input.DueDate
	}

	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

// Delete removes a task and cascades to its schedule items: the items are
// deleted and every affected day is recomputed so times stay contiguous.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if t.ID == "" {
		return task.ErrTaskNotFound
	}

	scheduleIDs, err := uc.scheduleRepo.DeleteItemsByTask(ctx, t.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItemsByTask: %v", err)
		return err
	}
	if err := uc.recomputeSchedules(ctx, scheduleIDs); err != nil {
		uc.l.Errorf(ctx, "uc.Delete recomputeSchedules: %v", err)
		return err
	}

	if err := uc.repo.DeleteTask(ctx, t.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
