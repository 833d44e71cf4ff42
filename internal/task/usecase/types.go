package usecase

// parsedTask mirrors one element of the LLM's task-parsing JSON array.
type parsedTask struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	DueDate          string `json:"due_date"` // "YYYY-MM-DD" or empty
	Priority         string `json:"priority"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}
