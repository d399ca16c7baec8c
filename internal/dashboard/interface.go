package dashboard

import (
	"context"

	"rentdesk-srv/pkg/table"
)

// Table is an opened dashboard table.
type Table interface {
	Info() Info
	Mount(ctx context.Context, rawQuery string) error
	SetSearchTerm(v string) error
	SetFilter(key, value string) error
	SetPage(p int) error
	SetPageSize(n int) error
	Retry() error
	ClearSearch() error
	ClearFilters() error
	State() table.State
	View() View
	Wait(ctx context.Context) (View, error)
	URL() string
	Close()
}

// Open creates the table registered under name. The table must be mounted before use.
func Open(name string, opts Options) (Table, error) {
	def, ok := registry[name]
	if !ok {
		return nil, ErrUnknownTable
	}
	return def.open(opts)
}

// Tables describes every registered table in display order.
func Tables() []Info {
	infos := make([]Info, 0, len(order))
	for _, name := range order {
		infos = append(infos, registry[name].describe())
	}
	return infos
}
