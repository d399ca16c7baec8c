package dashboard

import (
	"strconv"

	"rentdesk-srv/pkg/rentapi"
)

func projectProperty(p rentapi.Property, serial int) PropertyRow {
	return PropertyRow{
		Serial:   serial,
		ID:       p.ID,
		Name:     orPlaceholder(p.Name),
		Address:  orPlaceholder(p.Address),
		Location: refName(p.Location),
		Bedrooms: strconv.Itoa(p.Bedrooms),
		Rent:     FormatMoney(p.RentAmount),
		Status:   Title(p.Status),
		ImageURL: p.ImageURL,
	}
}

func (r PropertyRow) Cells() []string {
	return []string{strconv.Itoa(r.Serial), r.Name, r.Address, r.Location, r.Bedrooms, r.Rent, r.Status}
}

func projectPayment(p rentapi.Payment, serial int) PaymentRow {
	return PaymentRow{
		Serial:    serial,
		ID:        p.ID,
		Reference: orPlaceholder(p.Reference),
		Tenant:    personName(p.Tenant),
		Property:  refName(p.Property),
		Amount:    FormatMoney(p.Amount),
		Status:    Title(p.Status),
		DueDate:   FormatDate(p.DueDate),
		PaidAt:    formatDatePtr(p.PaidAt),
	}
}

func (r PaymentRow) Cells() []string {
	return []string{strconv.Itoa(r.Serial), r.Reference, r.Tenant, r.Property, r.Amount, r.Status, r.DueDate, r.PaidAt}
}

func projectDueRent(d rentapi.DueRent, serial int) DueRentRow {
	return DueRentRow{
		Serial:      serial,
		Reference:   orPlaceholder(d.Reference),
		Tenant:      personName(d.Tenant),
		Property:    refName(d.Property),
		Location:    refName(d.Location),
		Amount:      FormatMoney(d.Amount),
		DueDate:     FormatDate(d.DueDate),
		DaysOverdue: strconv.Itoa(d.DaysOverdue),
	}
}

func (r DueRentRow) Cells() []string {
	return []string{strconv.Itoa(r.Serial), r.Reference, r.Tenant, r.Property, r.Location, r.Amount, r.DueDate, r.DaysOverdue}
}

func projectTenant(t rentapi.Tenant, serial int) TenantRow {
	return TenantRow{
		Serial:   serial,
		ID:       t.ID,
		Name:     DisplayName(t.FirstName, t.LastName),
		Email:    orPlaceholder(t.Email),
		Phone:    orPlaceholder(t.Phone),
		Property: refName(t.Property),
		Location: refName(t.Location),
		Status:   Title(t.Status),
	}
}

func (r TenantRow) Cells() []string {
	return []string{strconv.Itoa(r.Serial), r.Name, r.Email, r.Phone, r.Property, r.Location, r.Status}
}

func projectAdmin(a rentapi.Admin, serial int) AdminRow {
	return AdminRow{
		Serial:     serial,
		ID:         a.ID,
		Name:       DisplayName(a.FirstName, a.LastName),
		Email:      orPlaceholder(a.Email),
		Phone:      orPlaceholder(a.Phone),
		Properties: strconv.Itoa(a.PropertiesCount),
		Status:     Title(a.Status),
	}
}

func (r AdminRow) Cells() []string {
	return []string{strconv.Itoa(r.Serial), r.Name, r.Email, r.Phone, r.Properties, r.Status}
}

func projectLocation(l rentapi.Location, serial int) LocationRow {
	return LocationRow{
		Serial:     serial,
		ID:         l.ID,
		Name:       orPlaceholder(l.Name),
		State:      orPlaceholder(l.State),
		Properties: strconv.Itoa(l.PropertiesCount),
	}
}

func (r LocationRow) Cells() []string {
	return []string{strconv.Itoa(r.Serial), r.Name, r.State, r.Properties}
}

func projectNotification(n rentapi.Notification, serial int) NotificationRow {
	status := "unread"
	if n.Read {
		status = "read"
	}
	return NotificationRow{
		Serial: serial,
		ID:     n.ID,
		Title:  orPlaceholder(n.Title),
		Body:   n.Body,
		Status: Title(status),
		Date:   FormatDate(n.CreatedAt),
	}
}

func (r NotificationRow) Cells() []string {
	return []string{strconv.Itoa(r.Serial), r.Title, r.Status, r.Date}
}
