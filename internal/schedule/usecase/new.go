package usecase

import (
	"sync/atomic"

	"dayflow/internal/pattern"
	"dayflow/internal/schedule/repository"
	"dayflow/internal/task"
	taskRepo "dayflow/internal/task/repository"
	"dayflow/pkg/gcalendar"
	"dayflow/pkg/llmprovider"
	"dayflow/pkg/log"
	"dayflow/pkg/timemath"
)

// Config holds the planner knobs the schedule use case needs.
type Config struct {
	DayStart   int // minutes from midnight
	DailyHours int
	CalendarID string
	Timezone   string
}

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	repo      repository.Repository
	taskRepo  taskRepo.Repository
	taskUC    task.UseCase
	patternUC pattern.UseCase
	llm       *llmprovider.Manager
	calendar  gcalendar.EventCreator // nil disables calendar export
	cal       *timemath.Calendar
	cfg       Config
	l         log.Logger

	// busy de-duplicates the expensive multi-day operations. Advisory
	// only; two browser tabs racing is acceptable for a personal tool.
	busy atomic.Bool
}

// New creates a new schedule UseCase implementation.
func New(
	repo repository.Repository,
	tRepo taskRepo.Repository,
	taskUC task.UseCase,
	patternUC pattern.UseCase,
	llm *llmprovider.Manager,
	calendar gcalendar.EventCreator,
	cal *timemath.Calendar,
	cfg Config,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:      repo,
		taskRepo:  tRepo,
		taskUC:    taskUC,
		patternUC: patternUC,
		llm:       llm,
		calendar:  calendar,
		cal:       cal,
		cfg:       cfg,
		l:         l,
	}
}
