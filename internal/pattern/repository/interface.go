package repository

import (
	"context"

	"dayflow/internal/model"
)

// Repository defines data access for TaskPattern rows.
type Repository interface {
	CreatePattern(ctx context.Context, opt CreatePatternOptions) (model.TaskPattern, error)
	ListPatterns(ctx context.Context, userID string) ([]model.TaskPattern, error)
	UpdatePattern(ctx context.Context, opt UpdatePatternOptions) (model.TaskPattern, error)
}
