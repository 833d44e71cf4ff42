package schedule

import "errors"

var (
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrItemNotFound         = errors.New("schedule item not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNoDaysToSchedule     = errors.New("no days to schedule")
	ErrNoTasksToSchedule    = errors.New("no tasks to schedule")
	ErrGenerationInProgress = errors.New("generation already in progress")
	ErrInvalidDrop          = errors.New("invalid drop payload")
	ErrInvalidHours         = errors.New("hours must be between 1 and 16")
	ErrBlocksUnparsable     = errors.New("could not parse generated blocks")
)
