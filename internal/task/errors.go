package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrDuplicateTitle  = errors.New("a task with this title already exists")
	ErrEmptyInput      = errors.New("input text is empty")
	ErrNoTasksParsed   = errors.New("no tasks could be parsed from input")
	ErrInvalidPriority = errors.New("invalid priority")
)
