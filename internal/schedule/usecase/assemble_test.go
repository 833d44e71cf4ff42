package usecase

import (
	"testing"

	"dayflow/internal/model"
	"dayflow/internal/schedule"
)

func TestAssembleItems_EchoedTaskIDWins(t *testing.T) {
	uc := &implUseCase{}
	tasks := []model.Task{
		{ID: "t1", Title: "Write report"},
		{ID: "t2", Title: "Review PRs"},
	}
	blocks := []schedule.GeneratedBlock{
		{Type: "task", TaskID: "t2", Title: "Review pull requests", StartTime: "09:00", EndTime: "10:00"},
		{Type: "break", Title: "Break", StartTime: "10:00", EndTime: "10:15"},
		{Type: "task", TaskID: "t1", Title: "Write the report", StartTime: "10:15", EndTime: "12:15"},
	}

	items, matched := uc.assembleItems(blocks, tasks)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].TaskID == nil || *items[0].TaskID != "t2" {
		t.Errorf("first block should link t2: %+v", items[0])
	}
	if items[0].Title != "Review PRs" {
		t.Errorf("linked block should take the task's title, got %q", items[0].Title)
	}
	if items[1].TaskID != nil || items[1].Type != model.BlockTypeBreak {
		t.Errorf("break block should stay unlinked: %+v", items[1])
	}
	if len(matched) != 2 {
		t.Errorf("expected 2 matched ids, got %v", matched)
	}
}

func TestAssembleItems_SubstringFallback(t *testing.T) {
	uc := &implUseCase{}
	tasks := []model.Task{{ID: "t1", Title: "Prepare slides for Monday"}}
	blocks := []schedule.GeneratedBlock{
		{Type: "task", Title: "prepare slides", StartTime: "09:00", EndTime: "10:00"},
	}

	items, matched := uc.assembleItems(blocks, tasks)
	if items[0].TaskID == nil || *items[0].TaskID != "t1" {
		t.Fatalf("fuzzy title match failed: %+v", items[0])
	}
	if len(matched) != 1 || matched[0] != "t1" {
		t.Errorf("matched ids: %v", matched)
	}
}

func TestAssembleItems_TaskClaimedOnce(t *testing.T) {
	uc := &implUseCase{}
	tasks := []model.Task{{ID: "t1", Title: "Write report"}}
	blocks := []schedule.GeneratedBlock{
		{Type: "task", TaskID: "t1", Title: "Write report", StartTime: "09:00", EndTime: "10:00"},
		{Type: "task", TaskID: "t1", Title: "Write report", StartTime: "10:00", EndTime: "11:00"},
	}

	items, matched := uc.assembleItems(blocks, tasks)
	if len(matched) != 1 {
		t.Fatalf("a task may be claimed by only one block, matched=%v", matched)
	}
	if items[1].TaskID != nil {
		t.Errorf("second block should stay unlinked: %+v", items[1])
	}
}

func TestAssembleItems_UnknownTypeDefaultsToTask(t *testing.T) {
	uc := &implUseCase{}
	blocks := []schedule.GeneratedBlock{
		{Type: "focus", Title: "Deep work", StartTime: "09:00", EndTime: "10:00"},
	}

	items, _ := uc.assembleItems(blocks, nil)
	if items[0].Type != model.BlockTypeTask {
		t.Errorf("unknown block type should default to task, got %s", items[0].Type)
	}
}

func TestAssembleItems_NoMatchLeavesBlockStandalone(t *testing.T) {
	uc := &implUseCase{}
	tasks := []model.Task{{ID: "t1", Title: "Write report"}}
	blocks := []schedule.GeneratedBlock{
		{Type: "task", Title: "Totally unrelated", StartTime: "09:00", EndTime: "10:00"},
	}

	items, matched := uc.assembleItems(blocks, tasks)
	if items[0].TaskID != nil {
		t.Errorf("unrelated block must not link a task: %+v", items[0])
	}
	if len(matched) != 0 {
		t.Errorf("nothing should match: %v", matched)
	}
}
