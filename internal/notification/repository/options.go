package repository

import "rentdesk-srv/internal/model"

type ListOptions struct {
	Scope  model.Scope
	Search string
	Status string
	Limit  int
	Offset int
}

type MarkReadOptions struct {
	Scope model.Scope
	ID    string
}
