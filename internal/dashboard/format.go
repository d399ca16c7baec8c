package dashboard

import (
	"fmt"
	"strings"
	"time"

	"rentdesk-srv/pkg/rentapi"

	"github.com/dustin/go-humanize"
)

// DisplayName joins first and last name, falling back to Placeholder.
func DisplayName(first, last string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name == "" {
		return Placeholder
	}
	return name
}

func personName(p *rentapi.PersonRef) string {
	if p == nil {
		return Placeholder
	}
	return DisplayName(p.FirstName, p.LastName)
}

func refName(r *rentapi.Ref) string {
	if r == nil || r.Name == "" {
		return Placeholder
	}
	return r.Name
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// FormatMoney renders an amount in kobo as naira, e.g. 125000050 -> "₦1,250,000.50".
func FormatMoney(kobo int64) string {
	sign := ""
	if kobo < 0 {
		sign = "-"
	}
	// Split before dropping the sign so math.MinInt64 never gets negated.
	whole, frac := kobo/100, kobo%100
	if whole < 0 {
		whole = -whole
	}
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%s₦%s.%02d", sign, humanize.Comma(whole), frac)
}

// FormatDate renders t as DateFormat, or Placeholder for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format(DateFormat)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return FormatDate(*t)
}

// Title capitalises a status value for display, e.g. "amount_desc" -> "Amount desc".
func Title(s string) string {
	if s == "" {
		return Placeholder
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
