package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayflow/internal/model"
	repo "dayflow/internal/schedule/repository"
)

// GetOneSchedule retrieves a single Schedule by the provided filters.
// Returns a zero-value Schedule (ID == "") when not found.
func (r *implRepository) GetOneSchedule(ctx context.Context, opt repo.GetOneScheduleOptions) (model.Schedule, error) {
	q := r.db.WithContext(ctx)
	if opt.ID != "" {
		q = q.Where("id = ?", opt.ID)
	}
	if opt.UserID != "" {
		q = q.Where("user_id = ?", opt.UserID)
	}
	if !opt.Date.IsZero() {
		q = q.Where("date = ?", opt.Date)
	}

	var s model.Schedule
	err := q.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Schedule{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "schedule/repository/gorm.GetOneSchedule: %v", err)
		return model.Schedule{}, repo.ErrFailedToGet
	}
	return s, nil
}

// GetOrCreateSchedule returns the (user, date) schedule, creating it on first use.
func (r *implRepository) GetOrCreateSchedule(ctx context.Context, userID string, date time.Time) (model.Schedule, error) {
	existing, err := r.GetOneSchedule(ctx, repo.GetOneScheduleOptions{UserID: userID, Date: date})
	if err != nil {
		return model.Schedule{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	s := model.Schedule{
		ID:     uuid.NewString(),
		UserID: userID,
		Date:   date,
	}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		// Unique (user, date) may have been inserted concurrently; re-read.
		recheck, rerr := r.GetOneSchedule(ctx, repo.GetOneScheduleOptions{UserID: userID, Date: date})
		if rerr == nil && recheck.ID != "" {
			return recheck, nil
		}
		r.l.Errorf(ctx, "schedule/repository/gorm.GetOrCreateSchedule: %v", err)
		return model.Schedule{}, repo.ErrFailedToInsert
	}
	return s, nil
}

// UpdateScheduleStats writes the aggregate numbers for a schedule row.
func (r *implRepository) UpdateScheduleStats(ctx context.Context, opt repo.UpdateScheduleStatsOptions) error {
	err := r.db.WithContext(ctx).Model(&model.Schedule{}).
		Where("id = ?", opt.ID).
		Updates(map[string]any{
			"total_minutes": opt.TotalMinutes,
			"work_blocks":   opt.WorkBlocks,
			"break_blocks":  opt.BreakBlocks,
			"suggestions":   opt.Suggestions,
		}).Error
	if err != nil {
		r.l.Errorf(ctx, "schedule/repository/gorm.UpdateScheduleStats: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
