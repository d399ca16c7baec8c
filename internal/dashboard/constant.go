package dashboard

const (
	// Placeholder is shown for missing relations and empty values.
	Placeholder = "N/A"

	DateFormat = "2006-01-02"

	MessageTransport  = "Something went wrong. Please try again."
	MessageRequest    = "Request failed. Please try again."
	MessageNoMatches  = "No results match your search or filters."
	ActionClearSearch = "Clear search and filters"

	FilterStatus   = "status"
	FilterLocation = "location"
	FilterSort     = "sort"

	TableProperties    = "properties"
	TablePayments      = "payments"
	TableDueRents      = "due-rents"
	TableTenants       = "tenants"
	TableAdmins        = "admins"
	TableLocations     = "locations"
	TableNotifications = "notifications"
)
