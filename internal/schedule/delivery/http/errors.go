package http

import (
	"errors"

	"dayflow/internal/schedule"
	pkgErrors "dayflow/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrScheduleNotFound):
		return pkgErrors.NewHTTPError(404, "schedule not found")
	case errors.Is(err, schedule.ErrItemNotFound):
		return pkgErrors.NewHTTPError(404, "schedule item not found")
	case errors.Is(err, schedule.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, schedule.ErrNoDaysToSchedule):
		return pkgErrors.NewHTTPError(422, "no remaining weekdays to schedule")
	case errors.Is(err, schedule.ErrNoTasksToSchedule):
		return pkgErrors.NewHTTPError(422, "no tasks to schedule")
	case errors.Is(err, schedule.ErrGenerationInProgress):
		return pkgErrors.NewHTTPError(409, "generation already in progress")
	case errors.Is(err, schedule.ErrInvalidDrop):
		return pkgErrors.NewHTTPError(400, "invalid drop payload")
	case errors.Is(err, schedule.ErrInvalidHours):
		return pkgErrors.NewHTTPError(400, "hours must be between 1 and 16")
	case errors.Is(err, schedule.ErrBlocksUnparsable):
		return pkgErrors.NewHTTPError(502, "the planner returned an unusable layout")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
