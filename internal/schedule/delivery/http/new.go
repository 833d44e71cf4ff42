package http

import (
	"dayflow/internal/schedule"
	"dayflow/pkg/log"
	"dayflow/pkg/timemath"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	GetDay(c interface{})
	GenerateDay(c interface{})
	GenerateWeek(c interface{})
	Drop(c interface{})
	ToggleItem(c interface{})
	UpdateHours(c interface{})
}

type handler struct {
	l   log.Logger
	uc  schedule.UseCase
	cal *timemath.Calendar
}

// New creates a new HTTP handler for the schedule domain. Date params are
// interpreted in the planner calendar's timezone.
func New(l log.Logger, uc schedule.UseCase, cal *timemath.Calendar) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		cal: cal,
	}
}
