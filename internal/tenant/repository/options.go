package repository

import "rentdesk-srv/internal/model"

type ListOptions struct {
	Scope      model.Scope
	Search     string
	Status     string
	LocationID string
	Limit      int
	Offset     int
}
