package model

import (
	"strings"
	"time"
)

// TaskPattern is a learned association between task keywords and typical
// duration / completion rate for one user.
type TaskPattern struct {
	ID             string `gorm:"primaryKey"`
	UserID         string `gorm:"index"`
	Keywords       string // comma-joined, lowercase, first-occurrence order
	AverageMinutes int
	TimesScheduled int
	TimesCompleted int
	CompletionRate float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// KeywordList splits the stored keyword string.
func (p TaskPattern) KeywordList() []string {
	if p.Keywords == "" {
		return nil
	}
	return strings.Split(p.Keywords, ",")
}

// MatchesAny reports whether the pattern's keyword set intersects the given set.
func (p TaskPattern) MatchesAny(keywords []string) bool {
	own := p.KeywordList()
	for _, k := range keywords {
		for _, o := range own {
			if k == o {
				return true
			}
		}
	}
	return false
}
