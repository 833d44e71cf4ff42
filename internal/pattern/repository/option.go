package repository

// CreatePatternOptions holds parameters for inserting a new TaskPattern.
type CreatePatternOptions struct {
	UserID         string
	Keywords       string
	AverageMinutes int
	TimesScheduled int
	TimesCompleted int
	CompletionRate float64
}

// UpdatePatternOptions holds the recomputed rolling stats for a pattern.
type UpdatePatternOptions struct {
	ID             string
	AverageMinutes int
	TimesScheduled int
	TimesCompleted int
	CompletionRate float64
}
