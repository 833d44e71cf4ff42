package gorm

import (
	"context"

	"github.com/google/uuid"

	"dayflow/internal/model"
	repo "dayflow/internal/pattern/repository"
)

// CreatePattern inserts a new TaskPattern row and returns the created entity.
func (r *implRepository) CreatePattern(ctx context.Context, opt repo.CreatePatternOptions) (model.TaskPattern, error) {
	p := model.TaskPattern{
		ID:             uuid.NewString(),
		UserID:         opt.UserID,
		Keywords:       opt.Keywords,
		AverageMinutes: opt.AverageMinutes,
		TimesScheduled: opt.TimesScheduled,
		TimesCompleted: opt.TimesCompleted,
		CompletionRate: opt.CompletionRate,
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		r.l.Errorf(ctx, "pattern/repository/gorm.CreatePattern: %v", err)
		return model.TaskPattern{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// ListPatterns returns all patterns of the user, oldest first. First-match
// semantics in the learner depend on this stable order.
func (r *implRepository) ListPatterns(ctx context.Context, userID string) ([]model.TaskPattern, error) {
	var patterns []model.TaskPattern
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&patterns).Error; err != nil {
		r.l.Errorf(ctx, "pattern/repository/gorm.ListPatterns: %v", err)
		return nil, repo.ErrFailedToList
	}
	return patterns, nil
}

// UpdatePattern writes the recomputed rolling stats.
func (r *implRepository) UpdatePattern(ctx context.Context, opt repo.UpdatePatternOptions) (model.TaskPattern, error) {
	var p model.TaskPattern
	if err := r.db.WithContext(ctx).First(&p, "id = ?", opt.ID).Error; err != nil {
		r.l.Errorf(ctx, "pattern/repository/gorm.UpdatePattern find: %v", err)
		return model.TaskPattern{}, repo.ErrFailedToUpdate
	}

	p.AverageMinutes = opt.AverageMinutes
	p.TimesScheduled = opt.TimesScheduled
	p.TimesCompleted = opt.TimesCompleted
	p.CompletionRate = opt.CompletionRate
	if err := r.db.WithContext(ctx).Save(&p).Error; err != nil {
		r.l.Errorf(ctx, "pattern/repository/gorm.UpdatePattern save: %v", err)
		return model.TaskPattern{}, repo.ErrFailedToUpdate
	}
	return p, nil
}
