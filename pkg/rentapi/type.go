package rentapi

import (
	"time"

	pkghttp "rentdesk-srv/pkg/http"
)

// Config holds configuration for the API client.
type Config struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient pkghttp.IClient
}

// Ref is a related record embedded in a list item. It is nil when the relation is missing.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PersonRef is a related user embedded in a list item.
type PersonRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// User is the authenticated account.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type Property struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Location   *Ref      `json:"location"`
	Bedrooms   int       `json:"bedrooms"`
	RentAmount int64     `json:"rentAmount"`
	Status     string    `json:"status"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Payment struct {
	ID        string     `json:"id"`
	Reference string     `json:"reference"`
	Amount    int64      `json:"amount"`
	Status    string     `json:"status"`
	DueDate   time.Time  `json:"dueDate"`
	PaidAt    *time.Time `json:"paidAt"`
	Tenant    *PersonRef `json:"tenant"`
	Property  *Ref       `json:"property"`
	CreatedAt time.Time  `json:"createdAt"`
}

type DueRent struct {
	PaymentID   string     `json:"paymentId"`
	Reference   string     `json:"reference"`
	Amount      int64      `json:"amount"`
	DueDate     time.Time  `json:"dueDate"`
	DaysOverdue int        `json:"daysOverdue"`
	Tenant      *PersonRef `json:"tenant"`
	Property    *Ref       `json:"property"`
	Location    *Ref       `json:"location"`
}

type Tenant struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	Property  *Ref      `json:"property"`
	Location  *Ref      `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

type Admin struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Status          string    `json:"status"`
	PropertiesCount int       `json:"propertiesCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Location struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	State           string    `json:"state"`
	PropertiesCount int       `json:"propertiesCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// clientImpl implements IClient.
type clientImpl struct {
	baseURL    string
	token      string
	timeout    time.Duration
	httpClient pkghttp.IClient
}
