package http

import (
	"dayflow/internal/task"
	pkgErrors "dayflow/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrDuplicateTitle:
		return pkgErrors.NewHTTPError(409, "a task with this title already exists")
	case task.ErrEmptyInput:
		return pkgErrors.NewHTTPError(400, "input text is empty")
	case task.ErrNoTasksParsed:
		return pkgErrors.NewHTTPError(422, "no tasks could be parsed from input")
	case task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "priority must be high, medium or low")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
