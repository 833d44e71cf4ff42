package usecase

import (
	"dayflow/internal/pattern/repository"
	"dayflow/pkg/log"
)

// implUseCase is the private implementation of pattern.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new pattern UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
