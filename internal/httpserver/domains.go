package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"dayflow/internal/middleware"
	patternHTTP "dayflow/internal/pattern/delivery/http"
	patternGorm "dayflow/internal/pattern/repository/gorm"
	patternUC "dayflow/internal/pattern/usecase"
	scheduleHTTP "dayflow/internal/schedule/delivery/http"
	scheduleGorm "dayflow/internal/schedule/repository/gorm"
	scheduleUC "dayflow/internal/schedule/usecase"
	taskHTTP "dayflow/internal/task/delivery/http"
	taskGorm "dayflow/internal/task/repository/gorm"
	taskUC "dayflow/internal/task/usecase"
	"dayflow/pkg/timemath"
)

// setupDomains initializes every domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainGorm.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	dayStart, err := timemath.ToMinutes(srv.cfg.Planner.DayStart)
	if err != nil {
		return err
	}

	// Repositories share the one GORM handle.
	patternRepo := patternGorm.New(srv.db, srv.l)
	taskRepo := taskGorm.New(srv.db, srv.l)
	scheduleRepo := scheduleGorm.New(srv.db, srv.l)

	// Pattern learner
	patterns := patternUC.New(patternRepo, srv.l)

	// Tasks depend on the schedule repository for delete cascades and on
	// the learner for completion signals.
	tasks := taskUC.New(taskRepo, scheduleRepo, patterns, srv.llm, srv.cal, dayStart, srv.l)
	srv.taskUC = tasks

	// Schedules orchestrate generation, distribution and drops.
	schedules := scheduleUC.New(
		scheduleRepo,
		taskRepo,
		tasks,
		patterns,
		srv.llm,
		srv.calendar,
		srv.cal,
		scheduleUC.Config{
			DayStart:   dayStart,
			DailyHours: srv.cfg.Planner.DailyHours,
			CalendarID: srv.cfg.GoogleCalendar.CalendarID,
			Timezone:   srv.cfg.Planner.Timezone,
		},
		srv.l,
	)

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tasks, srv.cal), mw)
	scheduleHTTP.RegisterRoutes(api, scheduleHTTP.New(srv.l, schedules, srv.cal), mw)
	patternHTTP.RegisterRoutes(api, patternHTTP.New(srv.l, patterns), mw)

	srv.l.Infof(ctx, "domains registered: tasks, schedules, patterns")
	return nil
}
