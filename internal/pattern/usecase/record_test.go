package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"dayflow/internal/model"
	"dayflow/internal/pattern"
	"dayflow/internal/pattern/repository"
	"dayflow/internal/pattern/usecase"
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

type mockPatternRepo struct {
	patterns []model.TaskPattern
	failList bool
}

func (m *mockPatternRepo) CreatePattern(ctx context.Context, opt repository.CreatePatternOptions) (model.TaskPattern, error) {
	p := model.TaskPattern{
		ID:             uuid.NewString(),
		UserID:         opt.UserID,
		Keywords:       opt.Keywords,
		AverageMinutes: opt.AverageMinutes,
		TimesScheduled: opt.TimesScheduled,
		TimesCompleted: opt.TimesCompleted,
		CompletionRate: opt.CompletionRate,
	}
	m.patterns = append(m.patterns, p)
	return p, nil
}

func (m *mockPatternRepo) ListPatterns(ctx context.Context, userID string) ([]model.TaskPattern, error) {
	if m.failList {
		return nil, errors.New("db error")
	}
	return m.patterns, nil
}

func (m *mockPatternRepo) UpdatePattern(ctx context.Context, opt repository.UpdatePatternOptions) (model.TaskPattern, error) {
	for i, p := range m.patterns {
		if p.ID == opt.ID {
			p.AverageMinutes = opt.AverageMinutes
			p.TimesScheduled = opt.TimesScheduled
			p.TimesCompleted = opt.TimesCompleted
			p.CompletionRate = opt.CompletionRate
			m.patterns[i] = p
			return p, nil
		}
	}
	return model.TaskPattern{}, errors.New("not found")
}

func TestRecordCompletion(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("creates pattern when none matches", func(t *testing.T) {
		repo := &mockPatternRepo{}
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.RecordCompletion(ctx, sc, pattern.RecordCompletionInput{
			Keywords:      []string{"write", "report"},
			ActualMinutes: 90,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Created {
			t.Error("expected a new pattern")
		}
		if out.Pattern.AverageMinutes != 90 || out.Pattern.TimesScheduled != 1 || out.Pattern.CompletionRate != 1.0 {
			t.Errorf("unexpected pattern stats: %+v", out.Pattern)
		}
	})

	t.Run("updates first intersecting pattern", func(t *testing.T) {
		repo := &mockPatternRepo{patterns: []model.TaskPattern{
			{ID: "p1", UserID: "u1", Keywords: "write,report", AverageMinutes: 60, TimesScheduled: 2, TimesCompleted: 2, CompletionRate: 1.0},
			{ID: "p2", UserID: "u1", Keywords: "report,review", AverageMinutes: 30, TimesScheduled: 1, TimesCompleted: 1, CompletionRate: 1.0},
		}}
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.RecordCompletion(ctx, sc, pattern.RecordCompletionInput{
			Keywords:      []string{"report"},
			ActualMinutes: 90,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created {
			t.Error("expected update, not create")
		}
		if out.Pattern.ID != "p1" {
			t.Errorf("first match must win, got %s", out.Pattern.ID)
		}
		// round((60*2 + 90) / 3) = 70
		if out.Pattern.AverageMinutes != 70 {
			t.Errorf("expected average 70, got %d", out.Pattern.AverageMinutes)
		}
		if out.Pattern.TimesScheduled != 3 || out.Pattern.TimesCompleted != 3 {
			t.Errorf("unexpected counts: %+v", out.Pattern)
		}
	})

	t.Run("rejects empty keywords", func(t *testing.T) {
		uc := usecase.New(&mockPatternRepo{}, &mockLogger{})
		_, err := uc.RecordCompletion(ctx, sc, pattern.RecordCompletionInput{ActualMinutes: 30})
		if !errors.Is(err, pattern.ErrNoKeywords) {
			t.Fatalf("expected ErrNoKeywords, got %v", err)
		}
	})

	t.Run("propagates repo failure", func(t *testing.T) {
		uc := usecase.New(&mockPatternRepo{failList: true}, &mockLogger{})
		_, err := uc.RecordCompletion(ctx, sc, pattern.RecordCompletionInput{
			Keywords:      []string{"write"},
			ActualMinutes: 30,
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
