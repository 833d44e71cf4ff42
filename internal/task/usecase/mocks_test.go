package usecase_test

import (
	"context"
	"errors"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/pattern"
	schedRepo "dayflow/internal/schedule/repository"
	"dayflow/internal/task/repository"
	"dayflow/pkg/llmprovider"
)

// mock dependencies

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

// stubProvider returns a canned LLM response.
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

// mockTaskRepo is an in-memory task repository.
type mockTaskRepo struct {
	tasks      map[string]model.Task
	inserted   []model.Task
	dupTitles  map[string]bool
	overdueIDs []string
	statusSet  map[string]model.TaskStatus
	scheduled  []string
	failInsert bool
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{
		tasks:     make(map[string]model.Task),
		dupTitles: make(map[string]bool),
		statusSet: make(map[string]model.TaskStatus),
	}
}

func (m *mockTaskRepo) InsertTask(ctx context.Context, t model.Task) (model.Task, error) {
	if m.failInsert {
		return model.Task{}, errors.New("db error")
	}
	m.inserted = append(m.inserted, t)
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, t model.Task) error {
	m.tasks[t.ID] = t
	return nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskRepo) HasActiveTitle(ctx context.Context, userID, title string) (bool, error) {
	return m.dupTitles[title], nil
}

func (m *mockTaskRepo) MarkTasksScheduled(ctx context.Context, ids []string) error {
	m.scheduled = append(m.scheduled, ids...)
	return nil
}

func (m *mockTaskRepo) ListOverdueScheduledTaskIDs(ctx context.Context, opt repository.OverdueOptions) ([]string, error) {
	return m.overdueIDs, nil
}

func (m *mockTaskRepo) UpdateTaskStatuses(ctx context.Context, ids []string, status model.TaskStatus) error {
	for _, id := range ids {
		m.statusSet[id] = status
	}
	return nil
}

// mockScheduleRepo is an in-memory schedule repository.
type mockScheduleRepo struct {
	schedules    map[string]model.Schedule
	items        map[string][]model.ScheduleItem
	itemsByTask  map[string][]model.ScheduleItem
	updatedItems []model.ScheduleItem
	replaced     map[string][]model.ScheduleItem
	deleteReturn []string
	deletedTasks []string
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{
		schedules:   make(map[string]model.Schedule),
		items:       make(map[string][]model.ScheduleItem),
		itemsByTask: make(map[string][]model.ScheduleItem),
		replaced:    make(map[string][]model.ScheduleItem),
	}
}

func (m *mockScheduleRepo) GetOneSchedule(ctx context.Context, opt schedRepo.GetOneScheduleOptions) (model.Schedule, error) {
	if opt.ID != "" {
		return m.schedules[opt.ID], nil
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
	return m.items[scheduleID], nil
}

func (m *mockScheduleRepo) ReplaceItems(ctx context.Context, scheduleID string, items []model.ScheduleItem) error {
	m.items[scheduleID] = items
	m.replaced[scheduleID] = items
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
	return nil
}

func (m *mockScheduleRepo) ListItemsByTask(ctx context.Context, taskID string) ([]model.ScheduleItem, error) {
	return m.itemsByTask[taskID], nil
}

func (m *mockScheduleRepo) DeleteItemsByTask(ctx context.Context, taskID string) ([]string, error) {
	m.deletedTasks = append(m.deletedTasks, taskID)
	return m.deleteReturn, nil
}

// mockPatternUC captures learning signals.
type mockPatternUC struct {
	recorded []pattern.RecordCompletionInput
	err      error
}

func (m *mockPatternUC) RecordCompletion(ctx context.Context, sc model.Scope, input pattern.RecordCompletionInput) (pattern.RecordCompletionOutput, error) {
	if m.err != nil {
		return pattern.RecordCompletionOutput{}, m.err
	}
	m.recorded = append(m.recorded, input)
	return pattern.RecordCompletionOutput{Created: true}, nil
}

func (m *mockPatternUC) List(ctx context.Context, sc model.Scope) (pattern.ListOutput, error) {
	return pattern.ListOutput{}, nil
}
