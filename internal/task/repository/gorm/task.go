package gorm

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"dayflow/internal/model"
	repo "dayflow/internal/task/repository"
)

// priorityTierExpr orders high before medium before low; unknown values last.
const priorityTierExpr = "CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 WHEN 'low' THEN 2 ELSE 3 END"

func (r *implRepository) InsertTask(ctx context.Context, t model.Task) (model.Task, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		r.l.Errorf(ctx, "task/repository/gorm.InsertTask: %v", err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	q := r.db.WithContext(ctx)
	if opt.ID != "" {
		q = q.Where("id = ?", opt.ID)
	}
	if opt.UserID != "" {
		q = q.Where("user_id = ?", opt.UserID)
	}

	var t model.Task
	err := q.First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gorm.GetOneTask: %v", err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", opt.UserID)
	if len(opt.Statuses) > 0 {
		q = q.Where("status IN ?", opt.Statuses)
	}

	var tasks []model.Task
	err := q.Order(priorityTierExpr + ", created_at ASC").Find(&tasks).Error
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gorm.ListTasks: %v", err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) error {
	if err := r.db.WithContext(ctx).Save(&t).Error; err != nil {
		r.l.Errorf(ctx, "task/repository/gorm.UpdateTask: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error; err != nil {
		r.l.Errorf(ctx, "task/repository/gorm.DeleteTask: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) HasActiveTitle(ctx context.Context, userID, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ?", userID).
		Where("LOWER(title) = ?", strings.ToLower(title)).
		Where("status <> ?", model.TaskStatusCompleted).
		Count(&count).Error
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gorm.HasActiveTitle: %v", err)
		return false, repo.ErrFailedToGet
	}
	return count > 0, nil
}

func (r *implRepository) MarkTasksScheduled(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id IN ?", ids).
		Update("status", model.TaskStatusScheduled).Error
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gorm.MarkTasksScheduled: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func (r *implRepository) ListOverdueScheduledTaskIDs(ctx context.Context, opt repo.OverdueOptions) ([]string, error) {
	q := r.db.WithContext(ctx).Model(&model.ScheduleItem{}).
		Select("DISTINCT schedule_items.task_id").
		Joins("JOIN schedules ON schedules.id = schedule_items.schedule_id").
		Joins("JOIN tasks ON tasks.id = schedule_items.task_id").
		Where("schedule_items.task_id IS NOT NULL").
		Where("schedule_items.completed = ?", false).
		Where("schedules.date < ?", opt.Before).
		Where("tasks.status = ?", model.TaskStatusScheduled)
	if opt.UserID != "" {
		q = q.Where("schedules.user_id = ?", opt.UserID)
	}

	var ids []string
	if err := q.Pluck("schedule_items.task_id", &ids).Error; err != nil {
		r.l.Errorf(ctx, "task/repository/gorm.ListOverdueScheduledTaskIDs: %v", err)
		return nil, repo.ErrFailedToList
	}
	return ids, nil
}

func (r *implRepository) UpdateTaskStatuses(ctx context.Context, ids []string, status model.TaskStatus) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id IN ?", ids).
		Update("status", status).Error
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gorm.UpdateTaskStatuses: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
