package gorm

import (
	"gorm.io/gorm"

	"dayflow/internal/task/repository"
	"dayflow/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a GORM-backed Repository for the task domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/gorm: db is required")
	}
	return &implRepository{db: db, l: l}
}
