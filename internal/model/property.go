package model

import "time"

const (
	PropertyStatusAvailable   = "available"
	PropertyStatusOccupied    = "occupied"
	PropertyStatusMaintenance = "maintenance"
)

type Property struct {
	ID         string
	Name       string
	Address    string
	Location   *Ref
	AdminID    string
	Bedrooms   int
	RentAmount int64 // kobo
	Status     string
	ImageKey   string
	CreatedAt  time.Time
}

type Location struct {
	ID              string
	Name            string
	State           string
	PropertiesCount int
	CreatedAt       time.Time
}
