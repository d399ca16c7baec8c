// Package querysync keeps table state and the URL query string in agreement.
package querysync

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Synchronizer decodes table state from a query string and writes it back in
// canonical form. It is not safe for concurrent use.
type Synchronizer struct {
	path      string
	filters   []Filter
	nav       Navigator
	pageKey   string
	searchKey string
	last      string
}

// New creates a Synchronizer for the table mounted at path. nav may be nil.
func New(path string, filters []Filter, nav Navigator, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		path:      path,
		nav:       nav,
		pageKey:   DefaultPageKey,
		searchKey: DefaultSearchKey,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.filters = lo.Map(filters, func(f Filter, _ int) Filter {
		if f.Default == "" {
			f.Default = All
		}
		return f
	})
	return s
}

// Filters returns the normalised filter declarations.
func (s *Synchronizer) Filters() []Filter {
	return append([]Filter(nil), s.filters...)
}

// Lookup returns the declaration for key.
func (s *Synchronizer) Lookup(key string) (Filter, bool) {
	return lo.Find(s.filters, func(f Filter) bool { return f.Key == key })
}

// Defaults returns the state of a table with nothing selected.
func (s *Synchronizer) Defaults() State {
	st := State{Page: firstPage, Filters: make(map[string]string, len(s.filters))}
	for _, f := range s.filters {
		st.Filters[f.Key] = f.Default
	}
	return st
}

// Decode reads state from rawQuery. A missing, non-numeric or non-positive page
// becomes 1; missing filters and values outside Allowed become the default.
func (s *Synchronizer) Decode(rawQuery string) State {
	// Malformed pairs are skipped; ParseQuery still returns the ones it could read.
	q, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))

	st := s.Defaults()
	if page, err := strconv.Atoi(q.Get(s.pageKey)); err == nil && page >= firstPage {
		st.Page = page
	}
	st.Search = q.Get(s.searchKey)
	for _, f := range s.filters {
		if v := q.Get(f.Key); v != "" && f.accepts(v) {
			st.Filters[f.Key] = v
		}
	}
	return st
}

// Encode returns the canonical query string for st: only parameters that differ
// from their defaults, in sorted key order, without the leading "?".
func (s *Synchronizer) Encode(st State) string {
	q := url.Values{}
	if st.Page > firstPage {
		q.Set(s.pageKey, strconv.Itoa(st.Page))
	}
	if st.Search != "" {
		q.Set(s.searchKey, st.Search)
	}
	for k, v := range s.ActiveFilters(st.Filters) {
		q.Set(k, v)
	}
	return q.Encode()
}

// URL returns path plus the canonical query string.
func (s *Synchronizer) URL(st State) string {
	if enc := s.Encode(st); enc != "" {
		return s.path + "?" + enc
	}
	return s.path
}

// Sync replaces the current location with the URL for st when it differs from the
// last one written. It reports whether navigation happened.
func (s *Synchronizer) Sync(st State) bool {
	u := s.URL(st)
	if u == s.last {
		return false
	}
	s.last = u
	if s.nav != nil {
		s.nav.Replace(u)
	}
	return true
}

// ActiveFilters returns the declared filters whose values should be sent:
// empty values and values equal to the default or All are dropped.
func (s *Synchronizer) ActiveFilters(values map[string]string) map[string]string {
	active := make(map[string]string, len(values))
	for _, f := range s.filters {
		v, ok := values[f.Key]
		if !ok || v == "" || v == All || v == f.Default {
			continue
		}
		active[f.Key] = v
	}
	return active
}

// Accepts reports whether v can be selected for f: empty, All, the default or
// one of Allowed. Selecting empty or All clears the filter.
func (f Filter) Accepts(v string) bool {
	if v == "" || v == All {
		return true
	}
	return f.accepts(v)
}

func (f Filter) accepts(v string) bool {
	if v == f.Default || len(f.Allowed) == 0 {
		return true
	}
	return lo.Contains(f.Allowed, v)
}
