package usecase_test

import (
	"context"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/pattern"
	schedRepo "dayflow/internal/schedule/repository"
	"dayflow/internal/task"
	taskRepo "dayflow/internal/task/repository"
	"dayflow/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubProvider struct {
	text string
	err  error
}

func (p *stubProvider) Generate(ctx context.Context, req *llmprovider.Request) (string, error) {
	return p.text, p.err
}
func (p *stubProvider) Name() string  { return "stub" }
func (p *stubProvider) Model() string { return "stub-model" }

func newStubManager(text string, err error) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{&stubProvider{text: text, err: err}}, false, &mockLogger{})
}

// mockTaskRepo is a slice-backed task store preserving insertion order.
type mockTaskRepo struct {
	tasks     []model.Task
	scheduled []string
	statusSet map[string]model.TaskStatus
}

func newMockTaskRepo(tasks ...model.Task) *mockTaskRepo {
	return &mockTaskRepo{tasks: tasks, statusSet: make(map[string]model.TaskStatus)}
}

func (m *mockTaskRepo) InsertTask(ctx context.Context, t model.Task) (model.Task, error) {
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt taskRepo.GetOneTaskOptions) (model.Task, error) {
	for _, t := range m.tasks {
		if t.ID == opt.ID && (opt.UserID == "" || t.UserID == opt.UserID) {
			return t, nil
		}
	}
	return model.Task{}, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, error) {
	want := make(map[model.TaskStatus]bool)
	for _, s := range opt.Statuses {
		want[s] = true
	}
	var out []model.Task
	for _, t := range m.tasks {
		if len(want) == 0 || want[t.Status] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, t model.Task) error { return nil }
func (m *mockTaskRepo) DeleteTask(ctx context.Context, id string) error    { return nil }

func (m *mockTaskRepo) HasActiveTitle(ctx context.Context, userID, title string) (bool, error) {
	return false, nil
}

func (m *mockTaskRepo) MarkTasksScheduled(ctx context.Context, ids []string) error {
	m.scheduled = append(m.scheduled, ids...)
	return nil
}

func (m *mockTaskRepo) ListOverdueScheduledTaskIDs(ctx context.Context, opt taskRepo.OverdueOptions) ([]string, error) {
	return nil, nil
}

func (m *mockTaskRepo) UpdateTaskStatuses(ctx context.Context, ids []string, status model.TaskStatus) error {
	for _, id := range ids {
		m.statusSet[id] = status
	}
	return nil
}

// mockScheduleRepo is an in-memory schedule store.
type mockScheduleRepo struct {
	schedules map[string]model.Schedule
	items     map[string][]model.ScheduleItem

	updatedItems []model.ScheduleItem
	deleteReturn []string
	deletedTasks []string
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{
		schedules: make(map[string]model.Schedule),
		items:     make(map[string][]model.ScheduleItem),
	}
}

func (m *mockScheduleRepo) GetOneSchedule(ctx context.Context, opt schedRepo.GetOneScheduleOptions) (model.Schedule, error) {
	if opt.ID != "" {
		s := m.schedules[opt.ID]
		if opt.UserID != "" && s.UserID != opt.UserID {
			return model.Schedule{}, nil
		}
		return s, nil
	}
	for _, s := range m.schedules {
		if (opt.UserID == "" || s.UserID == opt.UserID) && (opt.Date.IsZero() || s.Date.Equal(opt.Date)) {
			return s, nil
		}
	}
	return model.Schedule{}, nil
}

func (m *mockScheduleRepo) GetOrCreateSchedule(ctx context.Context, userID string, date time.Time) (model.Schedule, error) {
	for _, s := range m.schedules {
		if s.UserID == userID && s.Date.Equal(date) {
			return s, nil
		}
	}
	s := model.Schedule{ID: "sched-" + date.Format("2006-01-02"), UserID: userID, Date: date}
	m.schedules[s.ID] = s
	return s, nil
}

func (m *mockScheduleRepo) UpdateScheduleStats(ctx context.Context, opt schedRepo.UpdateScheduleStatsOptions) error {
	s := m.schedules[opt.ID]
	s.TotalMinutes = opt.TotalMinutes
	s.WorkBlocks = opt.WorkBlocks
	s.BreakBlocks = opt.BreakBlocks
	s.Suggestions = opt.Suggestions
	m.schedules[opt.ID] = s
	return nil
}

func (m *mockScheduleRepo) ListItems(ctx context.Context, scheduleID string) ([]model.ScheduleItem, error) {
	return append([]model.ScheduleItem(nil), m.items[scheduleID]...), nil
}

func (m *mockScheduleRepo) ReplaceItems(ctx context.Context, scheduleID string, items []model.ScheduleItem) error {
	m.items[scheduleID] = items
	return nil
}

func (m *mockScheduleRepo) GetOneItem(ctx context.Context, itemID string) (model.ScheduleItem, error) {
	for _, items := range m.items {
		for _, item := range items {
			if item.ID == itemID {
				return item, nil
			}
		}
	}
	return model.ScheduleItem{}, nil
}

func (m *mockScheduleRepo) UpdateItem(ctx context.Context, item model.ScheduleItem) error {
	m.updatedItems = append(m.updatedItems, item)
	for sid, items := range m.items {
		for i := range items {
			if items[i].ID == item.ID {
				m.items[sid][i] = item
			}
		}
	}
	return nil
}

func (m *mockScheduleRepo) ListItemsByTask(ctx context.Context, taskID string) ([]model.ScheduleItem, error) {
	var out []model.ScheduleItem
	for _, items := range m.items {
		for _, item := range items {
			if item.TaskID != nil && *item.TaskID == taskID {
				out = append(out, item)
			}
		}
	}
	return out, nil
}

func (m *mockScheduleRepo) DeleteItemsByTask(ctx context.Context, taskID string) ([]string, error) {
	m.deletedTasks = append(m.deletedTasks, taskID)
	var affected []string
	for sid, items := range m.items {
		var kept []model.ScheduleItem
		for _, item := range items {
			if item.TaskID != nil && *item.TaskID == taskID {
				continue
			}
			kept = append(kept, item)
		}
		if len(kept) != len(items) {
			affected = append(affected, sid)
			m.items[sid] = kept
		}
	}
	if m.deleteReturn != nil {
		return m.deleteReturn, nil
	}
	return affected, nil
}

// mockPatternUC returns no learned patterns.
type mockPatternUC struct{}

func (m *mockPatternUC) RecordCompletion(ctx context.Context, sc model.Scope, input pattern.RecordCompletionInput) (pattern.RecordCompletionOutput, error) {
	return pattern.RecordCompletionOutput{}, nil
}

func (m *mockPatternUC) List(ctx context.Context, sc model.Scope) (pattern.ListOutput, error) {
	return pattern.ListOutput{}, nil
}

// mockTaskUC records completion calls made back into the task domain.
type mockTaskUC struct {
	task.UseCase
	completed []task.CompleteInput
}

func (m *mockTaskUC) Complete(ctx context.Context, sc model.Scope, input task.CompleteInput) (model.Task, error) {
	m.completed = append(m.completed, input)
	return model.Task{ID: input.ID, Status: model.TaskStatusCompleted}, nil
}
