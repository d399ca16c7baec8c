package querysync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentFilters() []Filter {
	return []Filter{
		{Key: "status", Allowed: []string{"paid", "pending", "overdue", "failed"}},
		{Key: "sort", Default: "newest", Allowed: []string{"newest", "oldest", "amount_asc", "amount_desc"}},
	}
}

func TestDecode(t *testing.T) {
	s := New("/payments", paymentFilters(), nil)

	tests := []struct {
		name string
		raw  string
		want State
	}{
		{
			name: "empty query",
			raw:  "",
			want: State{Page: 1, Filters: map[string]string{"status": All, "sort": "newest"}},
		},
		{
			name: "full query with leading question mark",
			raw:  "?page=3&search=lagos&status=paid",
			want: State{Page: 3, Search: "lagos", Filters: map[string]string{"status": "paid", "sort": "newest"}},
		},
		{
			name: "invalid page",
			raw:  "page=abc",
			want: State{Page: 1, Filters: map[string]string{"status": All, "sort": "newest"}},
		},
		{
			name: "zero page",
			raw:  "page=0",
			want: State{Page: 1, Filters: map[string]string{"status": All, "sort": "newest"}},
		},
		{
			name: "unknown filter value falls back",
			raw:  "status=bogus&sort=oldest",
			want: State{Page: 1, Filters: map[string]string{"status": All, "sort": "oldest"}},
		},
		{
			name: "undeclared params are ignored",
			raw:  "page=2&foo=bar",
			want: State{Page: 2, Filters: map[string]string{"status": All, "sort": "newest"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Decode(tt.raw))
		})
	}
}

func TestEncodeOmitsDefaults(t *testing.T) {
	s := New("/payments", paymentFilters(), nil)

	assert.Equal(t, "", s.Encode(s.Defaults()))
	assert.Equal(t, "/payments", s.URL(s.Defaults()))

	st := State{Page: 1, Search: "", Filters: map[string]string{"status": All, "sort": "oldest"}}
	assert.Equal(t, "sort=oldest", s.Encode(st))

	st = State{Page: 3, Search: "lagos", Filters: map[string]string{"status": "paid", "sort": "newest"}}
	assert.Equal(t, "/payments?page=3&search=lagos&status=paid", s.URL(st))
}

func TestRoundTrip(t *testing.T) {
	s := New("/tenants", []Filter{
		{Key: "status", Allowed: []string{"active", "inactive", "evicted"}},
		{Key: "location"},
	}, nil)

	states := []State{
		s.Defaults(),
		{Page: 7, Search: "ade & sons", Filters: map[string]string{"status": "evicted", "location": All}},
		{Page: 1, Search: "", Filters: map[string]string{"status": All, "location": "12"}},
		{Page: 2, Search: "ikoyi", Filters: map[string]string{"status": "active", "location": "4"}},
	}
	for _, st := range states {
		assert.Equal(t, st, s.Decode(s.Encode(st)))
	}
}

func TestSyncUsesReplace(t *testing.T) {
	h := NewHistory("/payments")
	s := New("/payments", paymentFilters(), h)

	st := s.Decode("page=3&search=lagos&status=paid")
	require.True(t, s.Sync(st))
	assert.False(t, s.Sync(st))

	st.Page = 1
	st.Search = "abuja"
	require.True(t, s.Sync(st))

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "/payments?search=abuja&status=paid", h.Current())
}

func TestActiveFilters(t *testing.T) {
	s := New("/payments", paymentFilters(), nil)

	active := s.ActiveFilters(map[string]string{"status": All, "sort": "amount_desc", "other": "x"})
	assert.Equal(t, map[string]string{"sort": "amount_desc"}, active)

	assert.Empty(t, s.ActiveFilters(map[string]string{"status": "", "sort": "newest"}))
}

func TestLookup(t *testing.T) {
	s := New("/payments", paymentFilters(), nil)

	f, ok := s.Lookup("status")
	require.True(t, ok)
	assert.Equal(t, All, f.Default)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}

func TestHistory(t *testing.T) {
	h := NewHistory("/")
	h.Push("/payments")
	h.Replace("/payments?page=2")

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "/payments?page=2", h.Current())
	assert.Equal(t, "/", h.Back())
	assert.Equal(t, "/", h.Back())
	assert.Equal(t, 1, h.Len())
}

func TestCustomKeys(t *testing.T) {
	s := New("/admins", nil, nil, WithPageKey("p"), WithSearchKey("q"))

	st := s.Decode("p=4&q=femi")
	assert.Equal(t, 4, st.Page)
	assert.Equal(t, "femi", st.Search)
	assert.Equal(t, "p=4&q=femi", s.Encode(st))
}

func TestFilterAccepts(t *testing.T) {
	status, sort := paymentFilters()[0], paymentFilters()[1]

	assert.True(t, status.Accepts("paid"))
	assert.True(t, status.Accepts(All))
	assert.True(t, status.Accepts(""))
	assert.False(t, status.Accepts("bogus"))

	assert.True(t, sort.Accepts("newest"))
	assert.False(t, sort.Accepts("cheapest"))

	assert.True(t, Filter{Key: "location"}.Accepts("any-id"))
}
