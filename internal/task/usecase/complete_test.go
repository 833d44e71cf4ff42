package usecase_test

import (
	"context"
	"errors"
	"testing"

	"dayflow/internal/model"
	"dayflow/internal/task"
)

func TestComplete_MarksTaskAndItemAndRecordsPattern(t *testing.T) {
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{
		ID: "t1", UserID: "u1", Title: "Review quarterly budget",
		Priority: model.PriorityHigh, EstimatedMinutes: 60,
		Status: model.TaskStatusScheduled,
	}

	taskID := "t1"
	sched := newMockScheduleRepo()
	sched.itemsByTask["t1"] = []model.ScheduleItem{
		{ID: "i1", ScheduleID: "s1", Type: model.BlockTypeTask, TaskID: &taskID},
	}

	patterns := &mockPatternUC{}
	uc := newTaskUC(repo, sched, patterns, newStubManager("", nil))

	out, err := uc.Complete(context.Background(), model.Scope{UserID: "u1"}, task.CompleteInput{ID: "t1", ActualMinutes: 90})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if out.Status != model.TaskStatusCompleted || out.ActualMinutes != 90 || out.CompletedAt == nil {
		t.Errorf("task not completed properly: %+v", out)
	}
	if len(sched.updatedItems) != 1 || !sched.updatedItems[0].Completed {
		t.Errorf("schedule item not checked off: %+v", sched.updatedItems)
	}
	if len(patterns.recorded) != 1 {
		t.Fatalf("expected exactly one pattern update, got %d", len(patterns.recorded))
	}
	if patterns.recorded[0].ActualMinutes != 90 {
		t.Errorf("pattern got wrong duration: %d", patterns.recorded[0].ActualMinutes)
	}
	if len(patterns.recorded[0].Keywords) == 0 {
		t.Error("expected extracted keywords")
	}
}

func TestComplete_DefaultsToEstimate(t *testing.T) {
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{
		ID: "t1", UserID: "u1", Title: "Write documentation",
		EstimatedMinutes: 45, Status: model.TaskStatusScheduled,
	}

	uc := newTaskUC(repo, newMockScheduleRepo(), &mockPatternUC{}, newStubManager("", nil))

	out, err := uc.Complete(context.Background(), model.Scope{UserID: "u1"}, task.CompleteInput{ID: "t1"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out.ActualMinutes != 45 {
		t.Errorf("expected estimate fallback 45, got %d", out.ActualMinutes)
	}
}

func TestComplete_AlreadyCompletedIsNoOp(t *testing.T) {
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{ID: "t1", UserID: "u1", Title: "Done thing", Status: model.TaskStatusCompleted}

	patterns := &mockPatternUC{}
	uc := newTaskUC(repo, newMockScheduleRepo(), patterns, newStubManager("", nil))

	if _, err := uc.Complete(context.Background(), model.Scope{UserID: "u1"}, task.CompleteInput{ID: "t1"}); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(patterns.recorded) != 0 {
		t.Error("re-completing must not record another pattern update")
	}
}

func TestComplete_NotFound(t *testing.T) {
	uc := newTaskUC(newMockTaskRepo(), newMockScheduleRepo(), &mockPatternUC{}, newStubManager("", nil))

	_, err := uc.Complete(context.Background(), model.Scope{UserID: "u1"}, task.CompleteInput{ID: "missing"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestComplete_PatternFailureIsNonFatal(t *testing.T) {
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{ID: "t1", UserID: "u1", Title: "Prepare presentation slides", EstimatedMinutes: 30, Status: model.TaskStatusScheduled}

	patterns := &mockPatternUC{err: errors.New("learner down")}
	uc := newTaskUC(repo, newMockScheduleRepo(), patterns, newStubManager("", nil))

	out, err := uc.Complete(context.Background(), model.Scope{UserID: "u1"}, task.CompleteInput{ID: "t1"})
	if err != nil {
		t.Fatalf("pattern failure must not fail completion: %v", err)
	}
	if out.Status != model.TaskStatusCompleted {
		t.Errorf("task should still complete: %+v", out)
	}
}

func TestRollover_FlipsOverdueTasks(t *testing.T) {
	repo := newMockTaskRepo()
	repo.overdueIDs = []string{"t1", "t2"}

	uc := newTaskUC(repo, newMockScheduleRepo(), &mockPatternUC{}, newStubManager("", nil))

	out, err := uc.Rollover(context.Background(), model.Scope{UserID: "u1"}, task.RolloverInput{})
	if err != nil {
		t.Fatalf("Rollover: %v", err)
	}
	if out.RolledOver != 2 {
		t.Fatalf("expected 2 rolled over, got %d", out.RolledOver)
	}
	for _, id := range []string{"t1", "t2"} {
		if repo.statusSet[id] != model.TaskStatusRolledOver {
			t.Errorf("task %s not rolled over: %s", id, repo.statusSet[id])
		}
	}
}

func TestDelete_CascadesAndRecomputes(t *testing.T) {
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{ID: "t1", UserID: "u1", Title: "Old thing", Status: model.TaskStatusScheduled}

	sched := newMockScheduleRepo()
	sched.deleteReturn = []string{"s1"}
	sched.schedules["s1"] = model.Schedule{ID: "s1", UserID: "u1"}
	sched.items["s1"] = []model.ScheduleItem{
		{ID: "i2", ScheduleID: "s1", Type: model.BlockTypeTask, StartTime: "10:00", EndTime: "11:00", Title: "Other"},
	}

	uc := newTaskUC(repo, sched, &mockPatternUC{}, newStubManager("", nil))

	if err := uc.Delete(context.Background(), model.Scope{UserID: "u1"}, "t1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.tasks["t1"]; ok {
		t.Error("task row should be gone")
	}
	if len(sched.deletedTasks) != 1 || sched.deletedTasks[0] != "t1" {
		t.Errorf("items not cascaded: %v", sched.deletedTasks)
	}

	// Remaining item is recomputed back to the day start.
	replaced := sched.replaced["s1"]
	if len(replaced) != 1 || replaced[0].StartTime != "09:00" || replaced[0].EndTime != "10:00" {
		t.Errorf("day not recomputed contiguously: %+v", replaced)
	}
}
