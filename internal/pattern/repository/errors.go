package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert pattern")
	ErrFailedToList   = errors.New("failed to list patterns")
	ErrFailedToUpdate = errors.New("failed to update pattern")
)
