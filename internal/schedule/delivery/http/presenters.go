package http

import (
	"time"

	"dayflow/internal/model"
	"dayflow/internal/schedule"
	pkgErrors "dayflow/pkg/errors"
	"dayflow/pkg/response"
)

// --- Request DTOs ---

type generateDayReq struct {
	Date time.Time
}

func (r generateDayReq) toInput() schedule.GenerateDayInput {
	return schedule.GenerateDayInput{Date: r.Date}
}

func generateWeekInput() schedule.GenerateWeekInput {
	return schedule.GenerateWeekInput{}
}

// ---

type dropReq struct {
	SourceKind   string `json:"source_kind"    binding:"required,oneof=task item"`
	SourceID     string `json:"source_id"      binding:"required"`
	TargetKind   string `json:"target_kind"    binding:"required,oneof=day item none"`
	TargetDate   string `json:"target_date"    binding:"omitempty,datetime=2006-01-02"`
	TargetItemID string `json:"target_item_id" binding:"omitempty"`
}

func (r dropReq) validate() error {
	switch r.TargetKind {
	case "day":
		if r.TargetDate == "" {
			return pkgErrors.NewHTTPError(400, "target_date is required for day targets")
		}
	case "item":
		if r.TargetItemID == "" {
			return pkgErrors.NewHTTPError(400, "target_item_id is required for item targets")
		}
	}
	return nil
}

func (r dropReq) toInput(loc *time.Location) schedule.DropInput {
	input := schedule.DropInput{
		SourceKind:   schedule.DropSourceKind(r.SourceKind),
		SourceID:     r.SourceID,
		TargetKind:   schedule.DropTargetKind(r.TargetKind),
		TargetItemID: r.TargetItemID,
	}
	if r.TargetDate != "" {
		if d, err := time.ParseInLocation(response.DateFormat, r.TargetDate, loc); err == nil {
			input.TargetDate = d
		}
	}
	return input
}

// ---

type hoursReq struct {
	Date  time.Time `json:"-"` // populated from URI param
	Hours int       `json:"hours" binding:"required,min=1,max=16"`
}

func (r hoursReq) toInput() schedule.UpdateHoursInput {
	return schedule.UpdateHoursInput{Date: r.Date, Hours: r.Hours}
}

// --- Response DTOs ---

type itemResp struct {
	ID        string `json:"id"`
	Position  int    `json:"position"`
	Type      string `json:"type"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	TaskID    string `json:"task_id,omitempty"`
}

func newItemResp(item model.ScheduleItem) itemResp {
	resp := itemResp{
		ID:        item.ID,
		Position:  item.Position,
		Type:      string(item.Type),
		StartTime: item.StartTime,
		EndTime:   item.EndTime,
		Title:     item.Title,
		Completed: item.Completed,
	}
	if item.TaskID != nil {
		resp.TaskID = *item.TaskID
	}
	return resp
}

type dayResp struct {
	ID           string        `json:"id"`
	Date         response.Date `json:"date"`
	TotalMinutes int           `json:"total_minutes"`
	WorkBlocks   int           `json:"work_blocks"`
	BreakBlocks  int           `json:"break_blocks"`
	Suggestions  string        `json:"suggestions,omitempty"`
	Items        []itemResp    `json:"items"`
}

func newDayResp(out schedule.DayOutput) dayResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return dayResp{
		ID:           out.Schedule.ID,
		Date:         response.Date(out.Schedule.Date),
		TotalMinutes: out.Schedule.TotalMinutes,
		WorkBlocks:   out.Schedule.WorkBlocks,
		BreakBlocks:  out.Schedule.BreakBlocks,
		Suggestions:  out.Schedule.Suggestions,
		Items:        items,
	}
}

type weekResp struct {
	Days   []dayResp         `json:"days"`
	Failed map[string]string `json:"failed,omitempty"`
}

func newWeekResp(out schedule.GenerateWeekOutput) weekResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = newDayResp(d)
	}
	failed := out.Failed
	if len(failed) == 0 {
		failed = nil
	}
	return weekResp{Days: days, Failed: failed}
}

type dropResp struct {
	Applied bool      `json:"applied"`
	Days    []dayResp `json:"days"`
}

func newDropResp(out schedule.DropOutput) dropResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = newDayResp(d)
	}
	return dropResp{Applied: out.Applied, Days: days}
}
