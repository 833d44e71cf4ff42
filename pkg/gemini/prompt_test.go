package gemini

import (
	"strings"
	"testing"
)

func TestBuildTaskParsingPrompt(t *testing.T) {
	prompt := BuildTaskParsingPrompt("write report by friday", "2026-08-31 (Monday)")

	if !strings.Contains(prompt, "write report by friday") {
		t.Error("user input missing from prompt")
	}
	if !strings.Contains(prompt, "2026-08-31 (Monday)") {
		t.Error("current time missing from prompt")
	}
}

func TestBuildScheduleBlocksPrompt(t *testing.T) {
	tasks := []DayTaskPrompt{
		{ID: "t1", Title: "Write report", Priority: "high", EstimatedMinutes: 120},
	}
	hints := []PatternHint{
		{Keywords: "report,quarterly", AverageMinutes: 95, CompletionRate: 0.8},
	}

	prompt := BuildScheduleBlocksPrompt("2026-09-01", "09:00", 6, tasks, hints)

	for _, want := range []string{
		"DATE: 2026-09-01",
		"DAY START: 09:00",
		"PLANNED WORKING HOURS: 6",
		"id=t1",
		"estimated_minutes=120",
		"keywords=[report,quarterly]",
		"average_minutes=95",
		"completion_rate=0.80",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildScheduleBlocksPrompt_NoHintsNoHours(t *testing.T) {
	prompt := BuildScheduleBlocksPrompt("2026-09-01", "09:00", 0, nil, nil)

	if strings.Contains(prompt, "HISTORICAL DURATION HINTS") {
		t.Error("hint section should be omitted without hints")
	}
	if strings.Contains(prompt, "PLANNED WORKING HOURS") {
		t.Error("hours line should be omitted when unset")
	}
}
