package jobs

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"dayflow/internal/task"
	"dayflow/pkg/log"
)

// RolloverJob runs the nightly rollover: incomplete scheduled tasks from
// past days go back to rolled_over so they reappear for distribution.
type RolloverJob struct {
	cron   *cron.Cron
	taskUC task.UseCase
	l      log.Logger
}

// NewRolloverJob creates the job runner in the planner's timezone.
func NewRolloverJob(loc *time.Location, taskUC task.UseCase, l log.Logger) *RolloverJob {
	return &RolloverJob{
		cron:   cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		taskUC: taskUC,
		l:      l,
	}
}

// Schedule registers the nightly run at the given "HH:MM" and starts the cron.
func (j *RolloverJob) Schedule(timeStr string) error {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return err
	}
	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

// Stop halts the cron and waits for a running job to finish.
func (j *RolloverJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *RolloverJob) run() {
	ctx := context.Background()
	out, err := j.taskUC.RolloverAll(ctx, task.RolloverInput{})
	if err != nil {
		j.l.Errorf(ctx, "nightly rollover failed: %v", err)
		return
	}
	j.l.Infof(ctx, "nightly rollover done: %d tasks rolled over", out.RolledOver)
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
