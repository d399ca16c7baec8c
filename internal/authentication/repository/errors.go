package repository

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrFailedToGet = errors.New("failed to get")
)
