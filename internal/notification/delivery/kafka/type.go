package kafka

import "time"

// NotificationMessage is the JSON record on the notifications topic.
type NotificationMessage struct {
	EventType   string    `json:"event_type"`
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id,omitempty"`
	Role        string    `json:"role,omitempty"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}
