package http

import (
	"dayflow/internal/task"
	"dayflow/pkg/log"
	"dayflow/pkg/timemath"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	CreateFromText(c interface{})
	Create(c interface{})
	List(c interface{})
	Detail(c interface{})
	Update(c interface{})
	Delete(c interface{})
	Complete(c interface{})
	Rollover(c interface{})
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	cal *timemath.Calendar
}

// New creates a new HTTP handler for the task domain. Due dates are
// interpreted in the planner calendar's timezone.
func New(l log.Logger, uc task.UseCase, cal *timemath.Calendar) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		cal: cal,
	}
}
