package model

import "time"

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusOverdue = "overdue"
	PaymentStatusFailed  = "failed"
)

type Payment struct {
	ID        string
	Reference string
	Amount    int64 // kobo
	Status    string
	DueDate   time.Time
	PaidAt    *time.Time
	Tenant    *PersonRef
	Property  *Ref
	CreatedAt time.Time
}

// DueRent is an unpaid payment that has reached its due date window.
type DueRent struct {
	PaymentID   string
	Reference   string
	Amount      int64
	DueDate     time.Time
	DaysOverdue int
	Tenant      *PersonRef
	Property    *Ref
	Location    *Ref
}
