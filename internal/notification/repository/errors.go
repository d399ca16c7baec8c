package repository

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrFailedToList   = errors.New("failed to list")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToUpdate = errors.New("failed to update")
)
