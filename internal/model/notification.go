package model

import "time"

type Notification struct {
	ID          string
	RecipientID string // empty for broadcasts
	Role        string // empty means every role
	Title       string
	Body        string
	Read        bool
	CreatedAt   time.Time
}
