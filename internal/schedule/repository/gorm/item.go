package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayflow/internal/model"
	repo "dayflow/internal/schedule/repository"
)

// ListItems returns a schedule's items ordered by position, with task refs.
func (r *implRepository) ListItems(ctx context.Context, scheduleID string) ([]model.ScheduleItem, error) {
	var items []model.ScheduleItem
	err := r.db.WithContext(ctx).
		Preload("Task").
		Where("schedule_id = ?", scheduleID).
		Order("position ASC").
		Find(&items).Error
	if err != nil {
		r.l.Errorf(ctx, "schedule/repository/gorm.ListItems: %v", err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// ReplaceItems atomically swaps a schedule's items for the given set.
// Plain delete-then-insert inside one transaction.
func (r *implRepository) ReplaceItems(ctx context.Context, scheduleID string, items []model.ScheduleItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", scheduleID).Delete(&model.ScheduleItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ScheduleID = scheduleID
			if items[i].ID == "" {
				items[i].ID = uuid.NewString()
			}
			items[i].Task = nil
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "schedule/repository/gorm.ReplaceItems: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// GetOneItem returns a zero-value item (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, itemID string) (model.ScheduleItem, error) {
	var item model.ScheduleItem
	err := r.db.WithContext(ctx).Preload("Task").First(&item, "id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ScheduleItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "schedule/repository/gorm.GetOneItem: %v", err)
		return model.ScheduleItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// UpdateItem saves a single item row.
func (r *implRepository) UpdateItem(ctx context.Context, item model.ScheduleItem) error {
	item.Task = nil
	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		r.l.Errorf(ctx, "schedule/repository/gorm.UpdateItem: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ListItemsByTask returns all items referencing the task.
func (r *implRepository) ListItemsByTask(ctx context.Context, taskID string) ([]model.ScheduleItem, error) {
	var items []model.ScheduleItem
	err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Find(&items).Error
	if err != nil {
		r.l.Errorf(ctx, "schedule/repository/gorm.ListItemsByTask: %v", err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// DeleteItemsByTask removes all items referencing the task and returns the
// IDs of the schedules they belonged to, so callers can recompute those days.
func (r *implRepository) DeleteItemsByTask(ctx context.Context, taskID string) ([]string, error) {
	items, err := r.ListItemsByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&model.ScheduleItem{}).Error; err != nil {
		r.l.Errorf(ctx, "schedule/repository/gorm.DeleteItemsByTask: %v", err)
		return nil, repo.ErrFailedToDelete
	}

	seen := make(map[string]bool)
	var scheduleIDs []string
	for _, item := range items {
		if !seen[item.ScheduleID] {
			seen[item.ScheduleID] = true
			scheduleIDs = append(scheduleIDs, item.ScheduleID)
		}
	}
	return scheduleIDs, nil
}
