package model

import "time"

const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusEvicted   = "evicted"
	UserStatusSuspended = "suspended"
)

// User is an account of any role.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	Phone        string
	Status       string
	CreatedAt    time.Time
}

// Ref is a named related record.
type Ref struct {
	ID   string
	Name string
}

// PersonRef is a related user.
type PersonRef struct {
	ID        string
	FirstName string
	LastName  string
}

// Tenant is a tenant with the property of their active lease, if any.
type Tenant struct {
	User
	Property *Ref
	Location *Ref
}

// Admin is a property admin with the number of properties they manage.
type Admin struct {
	User
	PropertiesCount int
}
