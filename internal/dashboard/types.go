package dashboard

import (
	"time"

	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/querysync"
	"rentdesk-srv/pkg/rentapi"
	"rentdesk-srv/pkg/table"
)

// Options configures tables opened with Open.
type Options struct {
	API       rentapi.IClient
	Navigator querysync.Navigator
	Logger    log.Logger
	PageSize  int
	Debounce  time.Duration
	OnChange  func(View)
}

// Info describes a table without opening it.
type Info struct {
	Name    string
	Path    string
	Title   string
	Headers []string
	Filters []querysync.Filter
}

// EmptyState is the "no data" affordance of a table.
type EmptyState struct {
	Title        string
	Message      string
	CallToAction string
}

// View is a render-ready table.
type View struct {
	Name           string
	Title          string
	Headers        []string
	Rows           [][]string
	Pagination     table.Pagination
	ShowPagination bool
	Loading        bool
	Error          string
	Stale          bool // rows are from an earlier request that has since failed
	Empty          *EmptyState
	URL            string
}

// Row is a projected list item.
type Row interface {
	Cells() []string
}

// PropertyRow is a row of the properties table.
type PropertyRow struct {
	Serial   int
	ID       string
	Name     string
	Address  string
	Location string
	Bedrooms string
	Rent     string
	Status   string
	ImageURL string
}

// PaymentRow is a row of the payments table.
type PaymentRow struct {
	Serial    int
	ID        string
	Reference string
	Tenant    string
	Property  string
	Amount    string
	Status    string
	DueDate   string
	PaidAt    string
}

// DueRentRow is a row of the due rents table.
type DueRentRow struct {
	Serial      int
	Reference   string
	Tenant      string
	Property    string
	Location    string
	Amount      string
	DueDate     string
	DaysOverdue string
}

// TenantRow is a row of the tenants table.
type TenantRow struct {
	Serial   int
	ID       string
	Name     string
	Email    string
	Phone    string
	Property string
	Location string
	Status   string
}

// AdminRow is a row of the admins table.
type AdminRow struct {
	Serial     int
	ID         string
	Name       string
	Email      string
	Phone      string
	Properties string
	Status     string
}

// LocationRow is a row of the locations table.
type LocationRow struct {
	Serial     int
	ID         string
	Name       string
	State      string
	Properties string
}

// NotificationRow is a row of the notifications table.
type NotificationRow struct {
	Serial int
	ID     string
	Title  string
	Body   string
	Status string
	Date   string
}
