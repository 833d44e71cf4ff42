package task

import (
	"context"

	"dayflow/internal/model"
)

// UseCase is the task domain surface.
type UseCase interface {
	// CreateFromText parses natural-language input via the LLM and inserts
	// the resulting tasks, skipping case-insensitive duplicate titles.
	CreateFromText(ctx context.Context, sc model.Scope, input CreateFromTextInput) (CreateFromTextOutput, error)

	// Create inserts one task with explicit fields.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// List returns the user's tasks filtered by status.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns one task by id.
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Update applies a partial in-place edit.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Delete removes a task and cascades to its schedule items, recomputing
	// the affected days.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Complete marks a task completed and feeds the pattern learner.
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (model.Task, error)

	// Rollover flips the user's incomplete scheduled tasks from past days
	// back to rolled_over so they reappear for distribution.
	Rollover(ctx context.Context, sc model.Scope, input RolloverInput) (RolloverOutput, error)

	// RolloverAll runs Rollover across every user. Used by the nightly job.
	RolloverAll(ctx context.Context, input RolloverInput) (RolloverOutput, error)
}
