package http

import (
	"dayflow/internal/model"
	"dayflow/internal/pattern"
)

// --- Response DTOs ---

type patternResp struct {
	ID             string  `json:"id"`
	Keywords       string  `json:"keywords"`
	AverageMinutes int     `json:"average_minutes"`
	TimesScheduled int     `json:"times_scheduled"`
	TimesCompleted int     `json:"times_completed"`
	CompletionRate float64 `json:"completion_rate"`
}

func newPatternResp(p model.TaskPattern) patternResp {
	return patternResp{
		ID:             p.ID,
		Keywords:       p.Keywords,
		AverageMinutes: p.AverageMinutes,
		TimesScheduled: p.TimesScheduled,
		TimesCompleted: p.TimesCompleted,
		CompletionRate: p.CompletionRate,
	}
}

type listResp struct {
	Patterns []patternResp `json:"patterns"`
	Total    int           `json:"total"`
}

func (h *handler) newListResp(out pattern.ListOutput) listResp {
	patterns := make([]patternResp, len(out.Patterns))
	for i, p := range out.Patterns {
		patterns[i] = newPatternResp(p)
	}
	return listResp{Patterns: patterns, Total: len(patterns)}
}
