package dashboard

import (
	"math"
	"testing"
	"time"

	"rentdesk-srv/pkg/rentapi"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₦0.00", FormatMoney(0))
	assert.Equal(t, "₦5.07", FormatMoney(507))
	assert.Equal(t, "₦1,250,000.50", FormatMoney(125000050))
	assert.Equal(t, "₦100,000.00", FormatMoney(10000000))
	assert.Equal(t, "-₦1,000.00", FormatMoney(-100000))
	assert.Equal(t, "-₦0.50", FormatMoney(-50))
	assert.Equal(t, "-₦92,233,720,368,547,758.08", FormatMoney(math.MinInt64))
	assert.Equal(t, "₦92,233,720,368,547,758.07", FormatMoney(math.MaxInt64))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ada Obi", DisplayName("Ada", "Obi"))
	assert.Equal(t, "Ada", DisplayName(" Ada ", ""))
	assert.Equal(t, Placeholder, DisplayName("", " "))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, Placeholder, FormatDate(time.Time{}))
	assert.Equal(t, "2026-03-01", FormatDate(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestProjectPayment(t *testing.T) {
	paid := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	row := projectPayment(rentapi.Payment{
		ID:        "p1",
		Reference: "RNT-1",
		Amount:    15000000,
		Status:    "paid",
		DueDate:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		PaidAt:    &paid,
		Tenant:    &rentapi.PersonRef{FirstName: "Bola", LastName: "Ade"},
	}, 41)

	assert.Equal(t, []string{"41", "RNT-1", "Bola Ade", Placeholder, "₦150,000.00", "Paid", "2026-02-01", "2026-02-03"}, row.Cells())
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Amount desc", Title("amount_desc"))
	assert.Equal(t, Placeholder, Title(""))
}
