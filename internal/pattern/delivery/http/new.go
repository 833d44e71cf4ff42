package http

import (
	"dayflow/internal/pattern"
	"dayflow/pkg/log"
)

// Handler is the public interface for the pattern HTTP delivery layer.
type Handler interface {
	List(c interface{})
}

type handler struct {
	l  log.Logger
	uc pattern.UseCase
}

// New creates a new HTTP handler for the pattern domain.
func New(l log.Logger, uc pattern.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
