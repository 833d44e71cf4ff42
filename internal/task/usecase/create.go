package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dayflow/internal/model"
	"dayflow/internal/task"
)

// CreateFromText parses raw natural-language input via the LLM and inserts
// the resulting tasks. Case-insensitive duplicate titles are skipped, not
// treated as a hard failure: one bad line should not sink the batch.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input task.CreateFromTextInput) (task.CreateFromTextOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.CreateFromTextOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "CreateFromText: user=%s input_length=%d", sc.UserID, len(input.Text))

	parsed, err := uc.parseInputWithLLM(ctx, input.Text)
	if err != nil {
		return task.CreateFromTextOutput{}, fmt.Errorf("failed to parse input with LLM: %w", err)
	}
	if len(parsed) == 0 {
		return task.CreateFromTextOutput{}, task.ErrNoTasksParsed
	}

	uc.l.Infof(ctx, "CreateFromText: LLM parsed %d tasks", len(parsed))

	created := make([]model.Task, 0, len(parsed))
	for _, p := range parsed {
		if strings.TrimSpace(p.Title) == "" {
			continue
		}

		t, err := uc.normalize(p)
		if err != nil {
			uc.l.Warnf(ctx, "CreateFromText: skipping task %q: %v", p.Title, err)
			continue
		}

		dup, err := uc.repo.HasActiveTitle(ctx, sc.UserID, t.Title)
		if err != nil {
			return task.CreateFromTextOutput{}, err
		}
		if dup {
			uc.l.Infof(ctx, "CreateFromText: skipping duplicate title %q", t.Title)
			continue
		}

		t.ID = uuid.NewString()
		t.UserID = sc.UserID
		inserted, err := uc.repo.InsertTask(ctx, t)
		if err != nil {
			uc.l.Errorf(ctx, "CreateFromText: insert %q: %v", t.Title, err)
			return task.CreateFromTextOutput{}, err
		}
		created = append(created, inserted)
	}

	if len(created) == 0 {
		return task.CreateFromTextOutput{}, task.ErrNoTasksParsed
	}
	return task.CreateFromTextOutput{Tasks: created}, nil
}

// Create inserts one task with explicit fields.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Task{}, task.ErrEmptyInput
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return model.Task{}, task.ErrInvalidPriority
	}

	dup, err := uc.repo.HasActiveTitle(ctx, sc.UserID, input.Title)
	if err != nil {
		return model.Task{}, err
	}
	if dup {
		return model.Task{}, task.ErrDuplicateTitle
	}

	minutes := input.EstimatedMinutes
	if minutes <= 0 {
		minutes = defaultEstimatedMinutes
	}

	t := model.Task{
		ID:               uuid.NewString(),
		UserID:           sc.UserID,
		Title:            input.Title,
		Description:      input.Description,
		Priority:         priority,
		EstimatedMinutes: minutes,
		DueDate:          input.DueDate,
		Status:           model.TaskStatusPending,
	}

	inserted, err := uc.repo.InsertTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertTask: %v", err)
		return model.Task{}, err
	}
	return inserted, nil
}
