package usecase

import (
	"dayflow/internal/pattern"
	scheduleRepo "dayflow/internal/schedule/repository"
	"dayflow/internal/task/repository"
	"dayflow/pkg/llmprovider"
	"dayflow/pkg/log"
	"dayflow/pkg/timemath"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo         repository.Repository
	scheduleRepo scheduleRepo.Repository
	patternUC    pattern.UseCase
	llm          *llmprovider.Manager
	cal          *timemath.Calendar
	dayStart     int // minutes from midnight, for recomputing cascaded days
	l            log.Logger
}

// New creates a new task UseCase implementation.
func New(
	repo repository.Repository,
	schedRepo scheduleRepo.Repository,
	patternUC pattern.UseCase,
	llm *llmprovider.Manager,
	cal *timemath.Calendar,
	dayStart int,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:         repo,
		scheduleRepo: schedRepo,
		patternUC:    patternUC,
		llm:          llm,
		cal:          cal,
		dayStart:     dayStart,
		l:            l,
	}
}
