package repository

import "rentdesk-srv/internal/model"

type ListOptions struct {
	Scope  model.Scope
	Search string
	Status string
	Sort   string
	Limit  int
	Offset int
}

type DueOptions struct {
	Scope      model.Scope
	Search     string
	LocationID string
	WindowDays int
	Limit      int
	Offset     int
}
