package timemath

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is 24 hours * 60 minutes.
const MinutesPerDay = 1440

// ToMinutes converts an "HH:MM" string to minutes from midnight.
func ToMinutes(timeStr string) (int, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 {
		return 0, fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", timeStr)
	}
	return hour*60 + minute, nil
}

// ToTimeString converts minutes from midnight to a zero-padded "HH:MM" string.
// Minutes beyond 23:59 are kept as-is (e.g. 1500 → "25:00") so late schedules
// stay representable.
func ToTimeString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Span is a start/end pair in "HH:MM" form.
type Span struct {
	Start string
	End   string
}

// ContiguousSpans assigns contiguous start/end times to a sequence of
// durations, starting at dayStart (minutes from midnight). Pure, O(n);
// writing the spans back onto schedule rows is the caller's job.
func ContiguousSpans(durations []int, dayStart int) []Span {
	spans := make([]Span, len(durations))
	cursor := dayStart
	for i, d := range durations {
		end := cursor + d
		spans[i] = Span{Start: ToTimeString(cursor), End: ToTimeString(end)}
		cursor = end
	}
	return spans
}
