package http

import (
	"strings"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/task"
	"dayflow/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,min=1,max=4000"`
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput() task.CreateFromTextInput {
	return task.CreateFromTextInput{Text: r.Text}
}

// ---

type createReq struct {
	Title            string `json:"title"             binding:"required,min=1,max=255"`
	Description      string `json:"description"       binding:"max=2000"`
	Priority         string `json:"priority"          binding:"omitempty,oneof=high medium low"`
	EstimatedMinutes int    `json:"estimated_minutes" binding:"omitempty,min=1"`
	DueDate          string `json:"due_date"          binding:"omitempty,datetime=2006-01-02"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(loc *time.Location) task.CreateInput {
	var due *time.Time
	if r.DueDate != "" {
		if d, err := time.ParseInLocation(response.DateFormat, r.DueDate, loc); err == nil {
			due = &d
		}
	}
	return task.CreateInput{
		Title:            r.Title,
		Description:      r.Description,
		Priority:         model.Priority(r.Priority),
		EstimatedMinutes: r.EstimatedMinutes,
		DueDate:          due,
	}
}

// ---

type listReq struct {
	Status string `form:"status"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	var statuses []model.TaskStatus
	for _, s := range strings.Split(r.Status, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			statuses = append(statuses, model.TaskStatus(s))
		}
	}
	return task.ListInput{Statuses: statuses}
}

// ---

type updateReq struct {
	ID               string  `json:"-"` // populated from URI param
	Title            *string `json:"title"             binding:"omitempty,min=1,max=255"`
	Description      *string `json:"description"       binding:"omitempty,max=2000"`
	Priority         *string `json:"priority"          binding:"omitempty,oneof=high medium low"`
	EstimatedMinutes *int    `json:"estimated_minutes" binding:"omitempty,min=1"`
	DueDate          *string `json:"due_date"          binding:"omitempty"`
}

func (r updateReq) validate() error { return nil }

// toInput treats an explicit empty due_date string as "clear the due date".
func (r updateReq) toInput(loc *time.Location) task.UpdateInput {
	input := task.UpdateInput{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		EstimatedMinutes: r.EstimatedMinutes,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		input.Priority = &p
	}
	if r.DueDate != nil {
		if *r.DueDate == "" {
			input.ClearDueDate = true
		} else if d, err := time.ParseInLocation(response.DateFormat, *r.DueDate, loc); err == nil {
			input.DueDate = &d
		}
	}
	return input
}

// ---

type completeReq struct {
	ID            string `json:"-"` // populated from URI param
	ActualMinutes int    `json:"actual_minutes" binding:"omitempty,min=1"`
}

func (r completeReq) toInput() task.CompleteInput {
	return task.CompleteInput{
		ID:            r.ID,
		ActualMinutes: r.ActualMinutes,
	}
}

func taskRolloverInput() task.RolloverInput {
	return task.RolloverInput{}
}

// --- Response DTOs ---

type taskResp struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Priority         string             `json:"priority"`
	EstimatedMinutes int                `json:"estimated_minutes"`
	DueDate          *response.Date     `json:"due_date,omitempty"`
	Status           string             `json:"status"`
	CompletedAt      *response.DateTime `json:"completed_at,omitempty"`
	ActualMinutes    int                `json:"actual_minutes,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Priority:         string(t.Priority),
		EstimatedMinutes: t.EstimatedMinutes,
		Status:           string(t.Status),
		ActualMinutes:    t.ActualMinutes,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	if t.CompletedAt != nil {
		ts := response.DateTime(*t.CompletedAt)
		resp.CompletedAt = &ts
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return listResp{Tasks: out, Total: len(out)}
}

type rolloverResp struct {
	RolledOver int `json:"rolled_over"`
}
