package usecase

import (
	"context"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/task"
	repo "dayflow/internal/task/repository"
)

// Rollover flips the user's incomplete scheduled tasks from past days back
// to rolled_over so they reappear for distribution.
func (uc *implUseCase) Rollover(ctx context.Context, sc model.Scope, input task.RolloverInput) (task.RolloverOutput, error) {
	return uc.rollover(ctx, sc.UserID, input.Now)
}

// RolloverAll runs rollover across every user. Used by the nightly job.
func (uc *implUseCase) RolloverAll(ctx context.Context, input task.RolloverInput) (task.RolloverOutput, error) {
	return uc.rollover(ctx, "", input.Now)
}

func (uc *implUseCase) rollover(ctx context.Context, userID string, now time.Time) (task.RolloverOutput, error) {
	if now.IsZero() {
		now = time.Now()
	}
	before := uc.cal.StartOfDay(now)

	ids, err := uc.repo.ListOverdueScheduledTaskIDs(ctx, repo.OverdueOptions{
		UserID: userID,
		Before: before,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rollover ListOverdueScheduledTaskIDs: %v", err)
		return task.RolloverOutput{}, err
	}
	if len(ids) == 0 {
		return task.RolloverOutput{}, nil
	}

	if err := uc.repo.UpdateTaskStatuses(ctx, ids, model.TaskStatusRolledOver); err != nil {
		uc.l.Errorf(ctx, "uc.Rollover UpdateTaskStatuses: %v", err)
		return task.RolloverOutput{}, err
	}

	uc.l.Infof(ctx, "rollover: %d tasks rolled over (before=%s)", len(ids), before.Format(time.DateOnly))
	return task.RolloverOutput{RolledOver: len(ids)}, nil
}
