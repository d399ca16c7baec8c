package dashboard

import (
	"rentdesk-srv/pkg/querysync"
	"rentdesk-srv/pkg/rentapi"
	"rentdesk-srv/pkg/table"
)

type opener interface {
	describe() Info
	open(opts Options) (Table, error)
}

var order = []string{
	TableProperties,
	TablePayments,
	TableDueRents,
	TableTenants,
	TableAdmins,
	TableLocations,
	TableNotifications,
}

var locationFilter = querysync.Filter{Key: FilterLocation}

var registry = map[string]opener{
	TableProperties: definition[rentapi.Property, PropertyRow]{
		info: Info{
			Name:    TableProperties,
			Path:    "/properties",
			Title:   "Properties",
			Headers: []string{"S/N", "Name", "Address", "Location", "Bedrooms", "Rent", "Status"},
			Filters: []querysync.Filter{
				{Key: FilterStatus, Allowed: []string{"available", "occupied", "maintenance"}},
				locationFilter,
			},
		},
		empty: EmptyState{
			Title:        "No properties yet",
			Message:      "Properties you add will appear here.",
			CallToAction: "Add a property",
		},
		fetch:   func(api rentapi.IClient) table.FetchFunc[rentapi.Property] { return api.Properties },
		project: projectProperty,
	},
	TablePayments: definition[rentapi.Payment, PaymentRow]{
		info: Info{
			Name:    TablePayments,
			Path:    "/payments",
			Title:   "Payments",
			Headers: []string{"S/N", "Reference", "Tenant", "Property", "Amount", "Status", "Due date", "Paid on"},
			Filters: []querysync.Filter{
				{Key: FilterStatus, Allowed: []string{"paid", "pending", "overdue", "failed"}},
				{Key: FilterSort, Default: "newest", Allowed: []string{"newest", "oldest", "amount_asc", "amount_desc"}},
			},
		},
		empty: EmptyState{
			Title:        "No payments yet",
			Message:      "Rent payments will appear here once tenants start paying.",
			CallToAction: "Record a payment",
		},
		fetch:   func(api rentapi.IClient) table.FetchFunc[rentapi.Payment] { return api.Payments },
		project: projectPayment,
	},
	TableDueRents: definition[rentapi.DueRent, DueRentRow]{
		info: Info{
			Name:    TableDueRents,
			Path:    "/payments/due",
			Title:   "Due rents",
			Headers: []string{"S/N", "Reference", "Tenant", "Property", "Location", "Amount", "Due date", "Days overdue"},
			Filters: []querysync.Filter{locationFilter},
		},
		empty: EmptyState{
			Title:        "No rent is due",
			Message:      "Every tenant is up to date.",
			CallToAction: "View payments",
		},
		fetch:   func(api rentapi.IClient) table.FetchFunc[rentapi.DueRent] { return api.DueRents },
		project: projectDueRent,
	},
	TableTenants: definition[rentapi.Tenant, TenantRow]{
		info: Info{
			Name:    TableTenants,
			Path:    "/tenants",
			Title:   "Tenants",
			Headers: []string{"S/N", "Name", "Email", "Phone", "Property", "Location", "Status"},
			Filters: []querysync.Filter{
				{Key: FilterStatus, Allowed: []string{"active", "inactive", "evicted"}},
				locationFilter,
			},
		},
		empty: EmptyState{
			Title:        "No tenants yet",
			Message:      "Tenants you onboard will appear here.",
			CallToAction: "Add a tenant",
		},
		fetch:   func(api rentapi.IClient) table.FetchFunc[rentapi.Tenant] { return api.Tenants },
		project: projectTenant,
	},
	TableAdmins: definition[rentapi.Admin, AdminRow]{
		info: Info{
			Name:    TableAdmins,
			Path:    "/admins",
			Title:   "Admins",
			Headers: []string{"S/N", "Name", "Email", "Phone", "Properties", "Status"},
			Filters: []querysync.Filter{
				{Key: FilterStatus, Allowed: []string{"active", "suspended"}},
			},
		},
		empty: EmptyState{
			Title:        "No admins yet",
			Message:      "Property admins you invite will appear here.",
			CallToAction: "Invite an admin",
		},
		fetch:   func(api rentapi.IClient) table.FetchFunc[rentapi.Admin] { return api.Admins },
		project: projectAdmin,
	},
	TableLocations: definition[rentapi.Location, LocationRow]{
		info: Info{
			Name:    TableLocations,
			Path:    "/locations",
			Title:   "Locations",
			Headers: []string{"S/N", "Name", "State", "Properties"},
		},
		empty: EmptyState{
			Title:        "No locations yet",
			Message:      "Locations group properties by area.",
			CallToAction: "Add a location",
		},
		fetch:   func(api rentapi.IClient) table.FetchFunc[rentapi.Location] { return api.Locations },
		project: projectLocation,
	},
	TableNotifications: definition[rentapi.Notification, NotificationRow]{
		info: Info{
			Name:    TableNotifications,
			Path:    "/notifications",
			Title:   "Notifications",
			Headers: []string{"S/N", "Title", "Status", "Date"},
			Filters: []querysync.Filter{
				{Key: FilterStatus, Allowed: []string{"read", "unread"}},
			},
		},
		empty: EmptyState{
			Title:        "You're all caught up",
			Message:      "New notifications will appear here.",
			CallToAction: "Back to dashboard",
		},
		fetch:   func(api rentapi.IClient) table.FetchFunc[rentapi.Notification] { return api.Notifications },
		project: projectNotification,
	},
}
