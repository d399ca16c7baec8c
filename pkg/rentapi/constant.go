package rentapi

import "time"

const (
	// DefaultTimeout bounds a single list request. It is the only cancellation the client applies.
	DefaultTimeout = 15 * time.Second

	PathLogin         = "/authentication/login"
	PathMe            = "/authentication/me"
	PathProperties    = "/api/v1/properties"
	PathPayments      = "/api/v1/payments"
	PathDueRents      = "/api/v1/payments/due"
	PathTenants       = "/api/v1/tenants"
	PathAdmins        = "/api/v1/admins"
	PathLocations     = "/api/v1/locations"
	PathNotifications = "/api/v1/notifications"
)
