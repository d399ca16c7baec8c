package querysync

// Filter declares a URL-synced filter owned by a table.
type Filter struct {
	Key     string
	Default string   // defaults to All
	Allowed []string // empty means any value is accepted
}

// State is the URL-visible part of a table's state.
type State struct {
	Page    int // one-based
	Search  string
	Filters map[string]string // one entry per declared filter
}

// Navigator changes the current location without adding a history entry.
type Navigator interface {
	Replace(url string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string)

// Replace implements Navigator.
func (f NavigatorFunc) Replace(url string) { f(url) }

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithPageKey overrides the page parameter name.
func WithPageKey(key string) Option {
	return func(s *Synchronizer) { s.pageKey = key }
}

// WithSearchKey overrides the search parameter name.
func WithSearchKey(key string) Option {
	return func(s *Synchronizer) { s.searchKey = key }
}
