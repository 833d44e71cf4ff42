package usecase_test

import (
	"context"
	"errors"
	"testing"

	"dayflow/internal/model"
	"dayflow/internal/schedule"
)

func TestDrop_NoTargetIsNoOp(t *testing.T) {
	uc := newScheduleUC(newMockScheduleRepo(), newMockTaskRepo(), &mockTaskUC{}, newStubManager("", nil))

	out, err := uc.Drop(context.Background(), model.Scope{UserID: "u1"}, schedule.DropInput{
		SourceKind: schedule.DropSourceItem,
		SourceID:   "i1",
		TargetKind: schedule.DropTargetNone,
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if out.Applied {
		t.Error("releasing on no target must not apply")
	}
}

func TestDrop_TaskOntoDayAppends(t *testing.T) {
	day := mustDate(t, "2026-09-02")

	tasks := newMockTaskRepo(model.Task{
		ID: "t1", UserID: "u1", Title: "Write report",
		EstimatedMinutes: 90, Status: model.TaskStatusPending,
	})
	repo := newMockScheduleRepo()
	repo.schedules["s1"] = model.Schedule{ID: "s1", UserID: "u1", Date: day}
	repo.items["s1"] = []model.ScheduleItem{
		{ID: "i1", ScheduleID: "s1", Type: model.BlockTypeTask, Title: "Existing", StartTime: "09:00", EndTime: "10:00"},
	}

	uc := newScheduleUC(repo, tasks, &mockTaskUC{}, newStubManager("", nil))

	out, err := uc.Drop(context.Background(), model.Scope{UserID: "u1"}, schedule.DropInput{
		SourceKind: schedule.DropSourceTask,
		SourceID:   "t1",
		TargetKind: schedule.DropTargetDay,
		TargetDate: day,
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if !out.Applied || len(out.Days) != 1 {
		t.Fatalf("unexpected output: %+v", out)
	}

	items := out.Days[0].Items
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	last := items[1]
	if last.TaskID == nil || *last.TaskID != "t1" || last.Title != "Write report" {
		t.Errorf("dropped task not appended: %+v", last)
	}
	// Contiguous after the existing hour, keeping the 90 minute estimate.
	if last.StartTime != "10:00" || last.EndTime != "11:30" {
		t.Errorf("recompute wrong: %s-%s", last.StartTime, last.EndTime)
	}
	if len(tasks.scheduled) != 1 || tasks.scheduled[0] != "t1" {
		t.Errorf("task not marked scheduled: %v", tasks.scheduled)
	}
}

func TestDrop_TaskOntoItemInsertsBefore(t *testing.T) {
	day := mustDate(t, "2026-09-02")

	tasks := newMockTaskRepo(model.Task{
		ID: "t1", UserID: "u1", Title: "New thing", EstimatedMinutes: 30, Status: model.TaskStatusPending,
	})
	repo := newMockScheduleRepo()
	repo.schedules["s1"] = model.Schedule{ID: "s1", UserID: "u1", Date: day}
	repo.items["s1"] = []model.ScheduleItem{
		{ID: "i1", ScheduleID: "s1", Type: model.BlockTypeTask, Title: "First", StartTime: "09:00", EndTime: "10:00"},
		{ID: "i2", ScheduleID: "s1", Type: model.BlockTypeTask, Title: "Second", StartTime: "10:00", EndTime: "11:00"},
	}

	uc := newScheduleUC(repo, tasks, &mockTaskUC{}, newStubManager("", nil))

	out, err := uc.Drop(context.Background(), model.Scope{UserID: "u1"}, schedule.DropInput{
		SourceKind:   schedule.DropSourceTask,
		SourceID:     "t1",
		TargetKind:   schedule.DropTargetItem,
		TargetItemID: "i2",
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}

	items := out.Days[0].Items
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[1].TaskID == nil || *items[1].TaskID != "t1" {
		t.Errorf("task should slot in before the target item: %+v", items)
	}
	if items[2].ID != "i2" || items[2].StartTime != "10:30" {
		t.Errorf("target item should shift later: %+v", items[2])
	}
}

func TestDrop_TaskMoveRemovesOldPlacement(t *testing.T) {
	monday := mustDate(t, "2026-08-31")
	tuesday := mustDate(t, "2026-09-01")

	taskID := "t1"
	tasks := newMockTaskRepo(model.Task{
		ID: "t1", UserID: "u1", Title: "Roaming", EstimatedMinutes: 60, Status: model.TaskStatusScheduled,
	})
	repo := newMockScheduleRepo()
	repo.schedules["s1"] = model.Schedule{ID: "s1", UserID: "u1", Date: monday}
	repo.items["s1"] = []model.ScheduleItem{
		{ID: "i1", ScheduleID: "s1", Type: model.BlockTypeTask, Title: "Roaming", TaskID: &taskID, StartTime: "09:00", EndTime: "10:00"},
		{ID: "i2", ScheduleID: "s1", Type: model.BlockTypeBreak, Title: "Break", StartTime: "10:00", EndTime: "10:15"},
	}

	uc := newScheduleUC(repo, tasks, &mockTaskUC{}, newStubManager("", nil))

	out, err := uc.Drop(context.Background(), model.Scope{UserID: "u1"}, schedule.DropInput{
		SourceKind: schedule.DropSourceTask,
		SourceID:   "t1",
		TargetKind: schedule.DropTargetDay,
		TargetDate: tuesday,
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	// Target day plus the recomputed source day.
	if len(out.Days) != 2 {
		t.Fatalf("expected 2 affected days, got %d", len(out.Days))
	}

	if len(repo.items["s1"]) != 1 || repo.items["s1"][0].Type != model.BlockTypeBreak {
		t.Errorf("old placement should be cleared: %+v", repo.items["s1"])
	}
	if repo.items["s1"][0].StartTime != "09:00" {
		t.Errorf("source day should recompute from day start: %+v", repo.items["s1"][0])
	}
}

func TestDrop_ReorderWithinDay(t *testing.T) {
	day := mustDate(t, "2026-09-02")

	repo := newMockScheduleRepo()
	repo.schedules["s1"] = model.Schedule{ID: "s1", UserID: "u1", Date: day}
	repo.items["s1"] = []model.ScheduleItem{
		{ID: "i1", ScheduleID: "s1", Type: model.BlockTypeTask, Title: "A", StartTime: "09:00", EndTime: "10:00"},
		{ID: "i2", ScheduleID: "s1", Type: model.BlockTypeTask, Title: "B", StartTime: "10:00", EndTime: "10:30"},
		{ID: "i3", ScheduleID: "s1", Type: model.BlockTypeTask, Title: "C", StartTime: "10:30", EndTime: "11:00"},
	}

	uc := newScheduleUC(repo, newMockTaskRepo(), &mockTaskUC{}, newStubManager("", nil))

	out, err := uc.Drop(context.Background(), model.Scope{UserID: "u1"}, schedule.DropInput{
		SourceKind:   schedule.DropSourceItem,
		SourceID:     "i3",
		TargetKind:   schedule.DropTargetItem,
		TargetItemID: "i1",
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}

	items := out.Days[0].Items
	if items[0].ID != "i3" || items[1].ID != "i1" || items[2].ID != "i2" {
		t.Fatalf("wrong order: %s %s %s", items[0].ID, items[1].ID, items[2].ID)
	}
	// Durations survive the move; times re-anchor contiguously.
	if items[0].StartTime != "09:00" || items[0].EndTime != "09:30" {
		t.Errorf("moved item: %s-%s", items[0].StartTime, items[0].EndTime)
	}
	if items[1].StartTime != "09:30" || items[2].StartTime != "10:30" {
		t.Errorf("followers not re-anchored: %+v", items)
	}
}

func TestDrop_ItemOntoOwnDayIsNoOp(t *testing.T) {
	day := mustDate(t, "2026-09-02")

	repo := newMockScheduleRepo()
	repo.schedules["s1"] = model.Schedule{ID: "s1", UserID: "u1", Date: day}
	repo.items["s1"] = []model.ScheduleItem{
		{ID: "i1", ScheduleID: "s1", Type: model.BlockTypeTask, Title: "A", StartTime: "09:00", EndTime: "10:00"},
	}

	uc := newScheduleUC(repo, newMockTaskRepo(), &mockTaskUC{}, newStubManager("", nil))

	out, err := uc.Drop(context.Background(), model.Scope{UserID: "u1"}, schedule.DropInput{
		SourceKind: schedule.DropSourceItem,
		SourceID:   "i1",
		TargetKind: schedule.DropTargetDay,
		TargetDate: day,
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if out.Applied {
		t.Error("dropping back onto the own day must not apply")
	}
}

func TestDrop_ItemAcrossDays(t *testing.T) {
	monday := mustDate(t, "2026-08-31")
	tuesday := mustDate(t, "2026-09-01")

	repo := newMockScheduleRepo()
	repo.schedules["s1"] = model.Schedule{ID: "s1", UserID: "u1", Date: monday}
	repo.items["s1"] = []model.ScheduleItem{
		{ID: "i1", ScheduleID: "s1", Type: model.BlockTypeTask, Title: "A", StartTime: "09:00", EndTime: "10:00"},
	}

	uc := newScheduleUC(repo, newMockTaskRepo(), &mockTaskUC{}, newStubManager("", nil))

	out, err := uc.Drop(context.Background(), model.Scope{UserID: "u1"}, schedule.DropInput{
		SourceKind: schedule.DropSourceItem,
		SourceID:   "i1",
		TargetKind: schedule.DropTargetDay,
		TargetDate: tuesday,
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if len(out.Days) != 2 {
		t.Fatalf("expected source and target days, got %d", len(out.Days))
	}
	if len(repo.items["s1"]) != 0 {
		t.Errorf("source day should be empty: %+v", repo.items["s1"])
	}
	tgt := repo.items["sched-2026-09-01"]
	if len(tgt) != 1 || tgt[0].ID != "i1" || tgt[0].ScheduleID != "sched-2026-09-01" {
		t.Errorf("item not moved: %+v", tgt)
	}
}

func TestDrop_UnknownSourceTask(t *testing.T) {
	uc := newScheduleUC(newMockScheduleRepo(), newMockTaskRepo(), &mockTaskUC{}, newStubManager("", nil))

	_, err := uc.Drop(context.Background(), model.Scope{UserID: "u1"}, schedule.DropInput{
		SourceKind: schedule.DropSourceTask,
		SourceID:   "missing",
		TargetKind: schedule.DropTargetDay,
		TargetDate: mustDate(t, "2026-09-02"),
	})
	if !errors.Is(err, schedule.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDrop_MissingSourceID(t *testing.T) {
	uc := newScheduleUC(newMockScheduleRepo(), newMockTaskRepo(), &mockTaskUC{}, newStubManager("", nil))

	_, err := uc.Drop(context.Background(), model.Scope{UserID: "u1"}, schedule.DropInput{
		SourceKind: schedule.DropSourceItem,
		TargetKind: schedule.DropTargetDay,
		TargetDate: mustDate(t, "2026-09-02"),
	})
	if !errors.Is(err, schedule.ErrInvalidDrop) {
		t.Fatalf("expected ErrInvalidDrop, got %v", err)
	}
}
