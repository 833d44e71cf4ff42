package pattern

import (
	"context"

	"dayflow/internal/model"
)

// UseCase is the pattern learner surface.
type UseCase interface {
	// RecordCompletion folds a completed task's actual duration into the
	// first pattern whose keyword set intersects the given keywords,
	// creating a new pattern when none matches.
	RecordCompletion(ctx context.Context, sc model.Scope, input RecordCompletionInput) (RecordCompletionOutput, error)

	// List returns the user's learned patterns in creation order.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
}
