package dashboard

import (
	"context"

	"rentdesk-srv/pkg/querysync"
	"rentdesk-srv/pkg/rentapi"
	"rentdesk-srv/pkg/table"

	"github.com/samber/lo"
)

type definition[T any, R Row] struct {
	info    Info
	empty   EmptyState
	fetch   func(api rentapi.IClient) table.FetchFunc[T]
	project table.ProjectFunc[T, R]
}

func (d definition[T, R]) describe() Info {
	info := d.info
	info.Headers = append([]string(nil), d.info.Headers...)
	info.Filters = append([]querysync.Filter(nil), d.info.Filters...)
	return info
}

func (d definition[T, R]) open(opts Options) (Table, error) {
	if opts.API == nil {
		opts.API = rentapi.New(rentapi.Config{})
	}

	t := &tableImpl[T, R]{def: d}
	cfg := table.Config[T, R]{
		Name:      d.info.Name,
		Path:      d.info.Path,
		Fetch:     d.fetch(opts.API),
		Project:   d.project,
		Filters:   d.info.Filters,
		PageSize:  opts.PageSize,
		Debounce:  opts.Debounce,
		Navigator: opts.Navigator,
		Logger:    opts.Logger,
		Describe:  Describe,
	}
	if opts.OnChange != nil {
		cfg.OnChange = func(s table.Snapshot[R]) { opts.OnChange(t.view(s)) }
	}

	ctrl, err := table.New(cfg)
	if err != nil {
		return nil, err
	}
	t.ctrl = ctrl
	return t, nil
}

type tableImpl[T any, R Row] struct {
	def  definition[T, R]
	ctrl *table.Controller[T, R]
}

func (t *tableImpl[T, R]) Info() Info { return t.def.describe() }

func (t *tableImpl[T, R]) Mount(ctx context.Context, rawQuery string) error {
	return t.ctrl.Mount(ctx, rawQuery)
}

func (t *tableImpl[T, R]) SetSearchTerm(v string) error      { return t.ctrl.SetSearchTerm(v) }
func (t *tableImpl[T, R]) SetFilter(key, value string) error { return t.ctrl.SetFilter(key, value) }
func (t *tableImpl[T, R]) SetPage(p int) error               { return t.ctrl.SetPage(p) }
func (t *tableImpl[T, R]) SetPageSize(n int) error           { return t.ctrl.SetPageSize(n) }
func (t *tableImpl[T, R]) Retry() error                      { return t.ctrl.Retry() }
func (t *tableImpl[T, R]) ClearSearch() error                { return t.ctrl.ClearSearch() }
func (t *tableImpl[T, R]) ClearFilters() error               { return t.ctrl.ClearFilters() }
func (t *tableImpl[T, R]) State() table.State                { return t.ctrl.State() }
func (t *tableImpl[T, R]) URL() string                       { return t.ctrl.URL() }
func (t *tableImpl[T, R]) Close()                            { t.ctrl.Close() }

func (t *tableImpl[T, R]) View() View {
	return t.view(t.ctrl.Snapshot())
}

func (t *tableImpl[T, R]) Wait(ctx context.Context) (View, error) {
	snap, err := t.ctrl.Wait(ctx)
	return t.view(snap), err
}

func (t *tableImpl[T, R]) view(snap table.Snapshot[R]) View {
	v := View{
		Name:           t.def.info.Name,
		Title:          t.def.info.Title,
		Headers:        t.def.info.Headers,
		Rows:           lo.Map(snap.Rows, func(r R, _ int) []string { return r.Cells() }),
		Pagination:     snap.Pagination,
		ShowPagination: snap.ShowPagination(),
		Loading:        snap.IsLoading,
		URL:            t.ctrl.URL(),
	}
	if snap.IsError {
		v.Error = snap.ErrorMessage
		v.Stale = len(snap.Rows) > 0
	}
	if snap.Empty() {
		empty := t.def.empty
		if t.filtered(t.ctrl.State()) {
			empty.Message = MessageNoMatches
			empty.CallToAction = ActionClearSearch
		}
		v.Empty = &empty
	}
	return v
}

// filtered reports whether a search or a non-default filter narrows the result.
func (t *tableImpl[T, R]) filtered(st table.State) bool {
	if st.DebouncedSearchTerm != "" {
		return true
	}
	return lo.SomeBy(t.def.info.Filters, func(f querysync.Filter) bool {
		def := lo.Ternary(f.Default == "", querysync.All, f.Default)
		v := st.Filters[f.Key]
		return v != "" && v != def
	})
}
