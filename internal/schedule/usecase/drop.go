package usecase

import (
	"context"

	"github.com/google/uuid"

	"dayflow/internal/model"
	"dayflow/internal/schedule"
	taskRepo "dayflow/internal/task/repository"
	"dayflow/pkg/timemath"
)

// Drop resolves one completed drag gesture. Releasing on no valid target,
// or back onto the origin, is a no-op.
func (uc *implUseCase) Drop(ctx context.Context, sc model.Scope, input schedule.DropInput) (schedule.DropOutput, error) {
	if input.TargetKind == schedule.DropTargetNone {
		return schedule.DropOutput{}, nil
	}
	if input.SourceID == "" {
		return schedule.DropOutput{}, schedule.ErrInvalidDrop
	}

	switch input.SourceKind {
	case schedule.DropSourceTask:
		return uc.dropTask(ctx, sc, input)
	case schedule.DropSourceItem:
		return uc.dropItem(ctx, sc, input)
	default:
		return schedule.DropOutput{}, schedule.ErrInvalidDrop
	}
}

// dropTask places a task-list entry onto a day (append) or onto a specific
// item (insert at its position). Any previous placement is removed first.
func (uc *implUseCase) dropTask(ctx context.Context, sc model.Scope, input schedule.DropInput) (schedule.DropOutput, error) {
	t, err := uc.taskRepo.GetOneTask(ctx, taskRepo.GetOneTaskOptions{ID: input.SourceID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.dropTask GetOneTask: %v", err)
		return schedule.DropOutput{}, err
	}
	if t.ID == "" {
		return schedule.DropOutput{}, schedule.ErrTaskNotFound
	}

	day := uc.cal.StartOfDay(input.TargetDate)
	insertBeforeID := ""
	if input.TargetKind == schedule.DropTargetItem {
		tgt, err := uc.repo.GetOneItem(ctx, input.TargetItemID)
		if err != nil {
			return schedule.DropOutput{}, err
		}
		if tgt.ID == "" {
			return schedule.DropOutput{}, schedule.ErrItemNotFound
		}
		tgtSched, err := uc.ownedSchedule(ctx, sc.UserID, tgt.ScheduleID)
		if err != nil {
			return schedule.DropOutput{}, err
		}
		day = uc.cal.StartOfDay(tgtSched.Date)
		insertBeforeID = tgt.ID
	} else if input.TargetKind != schedule.DropTargetDay {
		return schedule.DropOutput{}, schedule.ErrInvalidDrop
	}

	// Clear any previous placement before inserting the new one.
	affected, err := uc.repo.DeleteItemsByTask(ctx, t.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.dropTask DeleteItemsByTask: %v", err)
		return schedule.DropOutput{}, err
	}

	sched, err := uc.repo.GetOrCreateSchedule(ctx, sc.UserID, day)
	if err != nil {
		return schedule.DropOutput{}, err
	}

	items, err := uc.repo.ListItems(ctx, sched.ID)
	if err != nil {
		return schedule.DropOutput{}, err
	}

	newItem := uc.newTaskItem(t)
	idx := len(items)
	if insertBeforeID != "" {
		for i, item := range items {
			if item.ID == insertBeforeID {
				idx = i
				break
			}
		}
	}
	items = append(items[:idx], append([]model.ScheduleItem{newItem}, items[idx:]...)...)

	out := schedule.DropOutput{Applied: true}

	targetDay, err := uc.persistDay(ctx, sched, items)
	if err != nil {
		return schedule.DropOutput{}, err
	}
	out.Days = append(out.Days, targetDay)

	for _, id := range affected {
		if id == sched.ID {
			continue
		}
		sourceDay, err := uc.recomputeByID(ctx, id)
		if err != nil {
			return schedule.DropOutput{}, err
		}
		out.Days = append(out.Days, sourceDay)
	}

	if err := uc.taskRepo.MarkTasksScheduled(ctx, []string{t.ID}); err != nil {
		return schedule.DropOutput{}, err
	}
	return out, nil
}

// dropItem moves or reorders an existing schedule item.
func (uc *implUseCase) dropItem(ctx context.Context, sc model.Scope, input schedule.DropInput) (schedule.DropOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, input.SourceID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.dropItem GetOneItem: %v", err)
		return schedule.DropOutput{}, err
	}
	if item.ID == "" {
		return schedule.DropOutput{}, schedule.ErrItemNotFound
	}
	srcSched, err := uc.ownedSchedule(ctx, sc.UserID, item.ScheduleID)
	if err != nil {
		return schedule.DropOutput{}, err
	}

	switch input.TargetKind {
	case schedule.DropTargetDay:
		day := uc.cal.StartOfDay(input.TargetDate)
		if uc.cal.SameDate(srcSched.Date, day) {
			// Dropped back onto its own day.
			return schedule.DropOutput{}, nil
		}
		tgtSched, err := uc.repo.GetOrCreateSchedule(ctx, sc.UserID, day)
		if err != nil {
			return schedule.DropOutput{}, err
		}
		return uc.moveItem(ctx, item, srcSched, tgtSched, "")

	case schedule.DropTargetItem:
		if input.TargetItemID == item.ID {
			return schedule.DropOutput{}, nil
		}
		tgt, err := uc.repo.GetOneItem(ctx, input.TargetItemID)
		if err != nil {
			return schedule.DropOutput{}, err
		}
		if tgt.ID == "" {
			return schedule.DropOutput{}, schedule.ErrItemNotFound
		}
		tgtSched, err := uc.ownedSchedule(ctx, sc.UserID, tgt.ScheduleID)
		if err != nil {
			return schedule.DropOutput{}, err
		}

		if tgtSched.ID == srcSched.ID {
			return uc.reorderWithin(ctx, srcSched, item.ID, tgt.ID)
		}
		return uc.moveItem(ctx, item, srcSched, tgtSched, tgt.ID)

	default:
		return schedule.DropOutput{}, schedule.ErrInvalidDrop
	}
}

// reorderWithin moves an item to another position in the same day.
func (uc *implUseCase) reorderWithin(ctx context.Context, sched model.Schedule, sourceID, targetID string) (schedule.DropOutput, error) {
	items, err := uc.repo.ListItems(ctx, sched.ID)
	if err != nil {
		return schedule.DropOutput{}, err
	}

	items, moved, ok := removeItem(items, sourceID)
	if !ok {
		return schedule.DropOutput{}, schedule.ErrItemNotFound
	}
	idx := len(items)
	for i, item := range items {
		if item.ID == targetID {
			idx = i
			break
		}
	}
	items = append(items[:idx], append([]model.ScheduleItem{moved}, items[idx:]...)...)

	day, err := uc.persistDay(ctx, sched, items)
	if err != nil {
		return schedule.DropOutput{}, err
	}
	return schedule.DropOutput{Applied: true, Days: []schedule.DayOutput{day}}, nil
}

// moveItem transfers an item between two days, recomputing both. Empty
// beforeID appends to the target day's end.
func (uc *implUseCase) moveItem(ctx context.Context, item model.ScheduleItem, src, tgt model.Schedule, beforeID string) (schedule.DropOutput, error) {
	srcItems, err := uc.repo.ListItems(ctx, src.ID)
	if err != nil {
		return schedule.DropOutput{}, err
	}
	srcItems, moved, ok := removeItem(srcItems, item.ID)
	if !ok {
		return schedule.DropOutput{}, schedule.ErrItemNotFound
	}

	tgtItems, err := uc.repo.ListItems(ctx, tgt.ID)
	if err != nil {
		return schedule.DropOutput{}, err
	}
	moved.ScheduleID = tgt.ID
	idx := len(tgtItems)
	if beforeID != "" {
		for i, it := range tgtItems {
			if it.ID == beforeID {
				idx = i
				break
			}
		}
	}
	tgtItems = append(tgtItems[:idx], append([]model.ScheduleItem{moved}, tgtItems[idx:]...)...)

	srcDay, err := uc.persistDay(ctx, src, srcItems)
	if err != nil {
		return schedule.DropOutput{}, err
	}
	tgtDay, err := uc.persistDay(ctx, tgt, tgtItems)
	if err != nil {
		return schedule.DropOutput{}, err
	}
	return schedule.DropOutput{Applied: true, Days: []schedule.DayOutput{srcDay, tgtDay}}, nil
}

// recomputeByID reloads and recomputes one schedule after external item changes.
func (uc *implUseCase) recomputeByID(ctx context.Context, scheduleID string) (schedule.DayOutput, error) {
	out, err := uc.dayOutput(ctx, scheduleID)
	if err != nil {
		return schedule.DayOutput{}, err
	}
	return uc.persistDay(ctx, out.Schedule, out.Items)
}

// newTaskItem builds a fresh item for a dropped task. The end time encodes
// the estimate so the recompute pass keeps the task's duration.
func (uc *implUseCase) newTaskItem(t model.Task) model.ScheduleItem {
	id := t.ID
	return model.ScheduleItem{
		ID:        uuid.NewString(),
		Type:      model.BlockTypeTask,
		Title:     t.Title,
		TaskID:    &id,
		StartTime: "00:00",
		EndTime:   timemath.ToTimeString(t.EstimatedMinutes),
	}
}

func removeItem(items []model.ScheduleItem, id string) ([]model.ScheduleItem, model.ScheduleItem, bool) {
	for i, item := range items {
		if item.ID == id {
			removed := item
			return append(items[:i], items[i+1:]...), removed, true
		}
	}
	return items, model.ScheduleItem{}, false
}
