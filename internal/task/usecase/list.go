package usecase

import (
	"context"

	"dayflow/internal/model"
	"dayflow/internal/task"
	repo "dayflow/internal/task/repository"
)

// List returns the user's tasks filtered by status. An empty filter means
// the schedulable set: pending, rolled_over and scheduled.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	statuses := input.Statuses
	if len(statuses) == 0 {
		statuses = []model.TaskStatus{
			model.TaskStatusPending,
			model.TaskStatusRolledOver,
			model.TaskStatusScheduled,
		}
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   sc.UserID,
		Statuses: statuses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}

// Detail returns one task by id, scoped to the user.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
