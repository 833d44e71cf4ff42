package usecase

import (
	"context"
	"math"
	"strings"

	"dayflow/internal/model"
	"dayflow/internal/pattern"
	repo "dayflow/internal/pattern/repository"
)

// RecordCompletion updates the first pattern whose keyword set intersects the
// given keywords, or inserts a new one. First match wins; no scoring.
func (uc *implUseCase) RecordCompletion(ctx context.Context, sc model.Scope, input pattern.RecordCompletionInput) (pattern.RecordCompletionOutput, error) {
	if len(input.Keywords) == 0 {
		return pattern.RecordCompletionOutput{}, pattern.ErrNoKeywords
	}

	patterns, err := uc.repo.ListPatterns(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RecordCompletion ListPatterns: %v", err)
		return pattern.RecordCompletionOutput{}, err
	}

	for _, p := range patterns {
		if !p.MatchesAny(input.Keywords) {
			continue
		}

		scheduled := p.TimesScheduled + 1
		completed := p.TimesCompleted + 1
		updated, err := uc.repo.UpdatePattern(ctx, repo.UpdatePatternOptions{
			ID:             p.ID,
			AverageMinutes: rollAverage(p.AverageMinutes, p.TimesScheduled, input.ActualMinutes),
			TimesScheduled: scheduled,
			TimesCompleted: completed,
			CompletionRate: float64(completed) / float64(scheduled),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.RecordCompletion UpdatePattern: %v", err)
			return pattern.RecordCompletionOutput{}, err
		}
		return pattern.RecordCompletionOutput{Pattern: updated}, nil
	}

	created, err := uc.repo.CreatePattern(ctx, repo.CreatePatternOptions{
		UserID:         sc.UserID,
		Keywords:       strings.Join(input.Keywords, ","),
		AverageMinutes: input.ActualMinutes,
		TimesScheduled: 1,
		TimesCompleted: 1,
		CompletionRate: 1.0,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RecordCompletion CreatePattern: %v", err)
		return pattern.RecordCompletionOutput{}, err
	}
	return pattern.RecordCompletionOutput{Pattern: created, Created: true}, nil
}

// List returns the user's learned patterns in creation order.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (pattern.ListOutput, error) {
	patterns, err := uc.repo.ListPatterns(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListPatterns: %v", err)
		return pattern.ListOutput{}, err
	}
	return pattern.ListOutput{Patterns: patterns}, nil
}

// rollAverage folds one new observation into a rolling average:
// round((oldAvg*oldCount + value) / (oldCount+1)).
func rollAverage(oldAvg, oldCount, value int) int {
	return int(math.Round(float64(oldAvg*oldCount+value) / float64(oldCount+1)))
}
