package pattern

import "dayflow/internal/model"

// RecordCompletionInput carries one completed task's learning signal.
type RecordCompletionInput struct {
	Keywords      []string
	ActualMinutes int
}

// RecordCompletionOutput reports the pattern that absorbed the completion.
type RecordCompletionOutput struct {
	Pattern model.TaskPattern
	Created bool
}

// ListOutput is the user's learned patterns.
type ListOutput struct {
	Patterns []model.TaskPattern
}
