package gemini

import (
	"strconv"
	"strings"
)

// TaskParsingSystemPrompt is the instruction sent for natural-language task parsing.
const TaskParsingSystemPrompt = `You are a task parsing assistant. Your job is to extract structured tasks from user input.

RULES:
1. Parse the input text and extract all individual tasks.
2. For each task, identify:
   - title: Short, clear task description (required)
   - description: Additional details (can be empty string)
   - due_date: Absolute calendar date "YYYY-MM-DD", or empty string if no date is mentioned
   - priority: MUST be exactly one of: "high", "medium", "low"
   - estimated_minutes: Integer number of minutes (minimum 15, default 60)

3. Return ONLY a valid JSON array. No markdown, no code blocks, no explanation text.
4. If no priority is mentioned, default to "medium".
5. Resolve relative dates ("tomorrow", "next friday") against the current time given below.

EXAMPLE INPUT:
"Write the quarterly report by friday, quick call with Sam tomorrow, clean inbox"

EXAMPLE OUTPUT:
[
  {"title": "Write the quarterly report", "description": "", "due_date": "2026-09-04", "priority": "medium", "estimated_minutes": 120},
  {"title": "Call with Sam", "description": "", "due_date": "2026-08-31", "priority": "medium", "estimated_minutes": 15},
  {"title": "Clean inbox", "description": "", "due_date": "", "priority": "low", "estimated_minutes": 30}
]`

// BuildTaskParsingPrompt builds the full prompt for task parsing.
func BuildTaskParsingPrompt(userInput string, currentTime string) string {
	return TaskParsingSystemPrompt +
		"\n\nCURRENT TIME (USE FOR RELATIVE DATE RESOLUTION):\n" + currentTime +
		"\n\nNow parse the following input and return ONLY the JSON array:\n" + userInput
}

// ScheduleBlocksSystemPrompt is the instruction for arranging a day's tasks
// into timed blocks.
const ScheduleBlocksSystemPrompt = `You are a daily schedule planner. Arrange the given tasks into a realistic sequence of timed blocks for a single work day.

RULES:
1. Every task gets exactly one block of type "task". Use the estimated duration; round up to a 15 minute grain.
2. Insert short blocks of type "break" (10-15 minutes) between long stretches of work, and exactly one block of type "lunch" (45-60 minutes) around midday.
3. Blocks are contiguous: each block starts when the previous one ends. The first block starts at the given day start time.
4. Higher priority tasks come earlier in the day.
5. For each task block, echo the task's id in "task_id". Break and lunch blocks have no task_id.
6. Return ONLY a valid JSON array of blocks, no markdown fences, no prose:
[
  {"title": "...", "type": "task", "task_id": "...", "start_time": "09:00", "end_time": "10:00"},
  {"title": "Break", "type": "break", "start_time": "10:00", "end_time": "10:15"}
]`

// DayTaskPrompt is one task line inside the scheduling prompt.
type DayTaskPrompt struct {
	ID               string
	Title            string
	Priority         string
	EstimatedMinutes int
}

// PatternHint is advisory learned-duration context appended to the prompt.
type PatternHint struct {
	Keywords       string
	AverageMinutes int
	CompletionRate float64
}

// BuildScheduleBlocksPrompt builds the scheduling prompt for one day.
func BuildScheduleBlocksPrompt(date string, dayStart string, plannedHours int, tasks []DayTaskPrompt, hints []PatternHint) string {
	var sb strings.Builder
	sb.WriteString(ScheduleBlocksSystemPrompt)
	sb.WriteString("\n\nDATE: " + date)
	sb.WriteString("\nDAY START: " + dayStart)
	if plannedHours > 0 {
		sb.WriteString("\nPLANNED WORKING HOURS: " + strconv.Itoa(plannedHours))
	}
	sb.WriteString("\n\nTASKS:\n")
	for _, t := range tasks {
		sb.WriteString("- id=" + t.ID)
		sb.WriteString(" priority=" + t.Priority)
		if t.EstimatedMinutes > 0 {
			sb.WriteString(" estimated_minutes=")
			sb.WriteString(strconv.Itoa(t.EstimatedMinutes))
		}
		sb.WriteString(" title=" + t.Title + "\n")
	}
	if len(hints) > 0 {
		sb.WriteString("\nHISTORICAL DURATION HINTS (advisory, from this user's completed tasks):\n")
		for _, h := range hints {
			sb.WriteString("- keywords=[" + h.Keywords + "]")
			sb.WriteString(" average_minutes=" + strconv.Itoa(h.AverageMinutes))
			sb.WriteString(" completion_rate=" + strconv.FormatFloat(h.CompletionRate, 'f', 2, 64) + "\n")
		}
	}
	sb.WriteString("\nReturn ONLY the JSON array of blocks:")
	return sb.String()
}
