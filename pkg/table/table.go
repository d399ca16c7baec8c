// Package table implements a server-paginated list controller with URL-synced
// page, search and filter state.
package table

import (
	"context"
	"sync"

	"rentdesk-srv/pkg/debounce"
	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/querysync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/lo"
)

// Controller owns the state of one table. Setters may be called from any goroutine;
// fetches run in the background and only the latest request's result is applied.
type Controller[T, R any] struct {
	cfg       Config[T, R]
	l         log.Logger
	query     *querysync.Synchronizer
	debouncer *debounce.Debouncer[string]
	cache     *lru.Cache[string, paginator.Page[T]]

	mu            sync.Mutex
	ctx           context.Context
	cancel        context.CancelFunc
	cancelFetch   context.CancelFunc
	wg            sync.WaitGroup
	state         State
	snap          Snapshot[R]
	latest        string
	searchPending bool
	mounted       bool
	closed        bool
	changed       chan struct{}

	emitMu  sync.Mutex
	emitted uint64
}

// New creates a Controller. Call Mount before any other method.
func New[T, R any](cfg Config[T, R]) (*Controller[T, R], error) {
	if cfg.Fetch == nil {
		return nil, ErrMissingFetch
	}
	if cfg.Project == nil {
		return nil, ErrMissingProject
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Describe == nil {
		cfg.Describe = func(error) string { return MessageFailed }
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}

	cache, err := lru.New[string, paginator.Page[T]](cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	c := &Controller[T, R]{
		cfg:     cfg,
		l:       cfg.Logger,
		query:   querysync.New(cfg.Path, cfg.Filters, cfg.Navigator),
		cache:   cache,
		changed: make(chan struct{}),
	}
	if cfg.Debounce > 0 {
		c.debouncer = debounce.New(cfg.Debounce, c.commitSearch)
	}
	return c, nil
}

// Mount initialises the state from rawQuery, rewrites the URL in canonical form and
// issues the initial fetch. Mounting again re-initialises the table.
func (c *Controller[T, R]) Mount(ctx context.Context, rawQuery string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.cancel != nil {
		c.cancel()
	}
	if c.debouncer != nil {
		c.debouncer.Cancel()
	}

	st := c.query.Decode(rawQuery)
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.state = State{
		CurrentPage:         st.Page,
		PageSize:            c.cfg.PageSize,
		SearchTerm:          st.Search,
		DebouncedSearchTerm: st.Search,
		Filters:             st.Filters,
	}
	c.searchPending = false
	c.mounted = true
	c.syncURLLocked()
	snap := c.dispatchLocked()
	c.mu.Unlock()

	c.emit(snap)
	return nil
}

// SetSearchTerm stores v, resets the page to 1 and schedules a fetch once the
// input has been quiet for the debounce period.
func (c *Controller[T, R]) SetSearchTerm(v string) error {
	c.mu.Lock()
	if err := c.usableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.state.SearchTerm = v
	c.state.CurrentPage = 1
	c.syncURLLocked()

	if c.debouncer == nil {
		snap, ok := c.commitLocked(v)
		c.mu.Unlock()
		if ok {
			c.emit(snap)
		}
		return nil
	}

	c.searchPending = true
	c.debouncer.Push(v)
	c.mu.Unlock()
	return nil
}

// SetFilter selects value for the filter key and resets the page to 1.
// Setting the default (or an empty value) clears the filter.
func (c *Controller[T, R]) SetFilter(key, value string) error {
	c.mu.Lock()
	if err := c.usableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	f, ok := c.query.Lookup(key)
	if !ok {
		c.mu.Unlock()
		return ErrUnknownFilter
	}
	if value == "" || value == querysync.All {
		value = f.Default
	}
	if value != f.Default && len(f.Allowed) > 0 && !lo.Contains(f.Allowed, value) {
		c.mu.Unlock()
		return ErrInvalidFilterValue
	}

	c.state.Filters[key] = value
	c.state.CurrentPage = 1
	return c.refreshAndUnlock(false)
}

// SetPage moves to the one-based page p. Pages beyond the last one are not clamped.
func (c *Controller[T, R]) SetPage(p int) error {
	if p < 1 {
		return ErrInvalidPage
	}
	c.mu.Lock()
	if err := c.usableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.state.CurrentPage = p
	return c.refreshAndUnlock(false)
}

// SetPageSize changes the number of rows per page.
func (c *Controller[T, R]) SetPageSize(n int) error {
	if n < 1 {
		return ErrInvalidPageSize
	}
	c.mu.Lock()
	if err := c.usableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.state.PageSize = n
	return c.refreshAndUnlock(false)
}

// Retry re-issues the current request.
func (c *Controller[T, R]) Retry() error {
	c.mu.Lock()
	if err := c.usableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	return c.refreshAndUnlock(true)
}

// ClearSearch drops the search term, including one still waiting for the debounce period.
func (c *Controller[T, R]) ClearSearch() error {
	c.mu.Lock()
	if err := c.usableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.debouncer != nil {
		c.debouncer.Cancel()
	}
	c.searchPending = false
	c.state.SearchTerm = ""
	c.state.DebouncedSearchTerm = ""
	c.state.CurrentPage = 1
	return c.refreshAndUnlock(false)
}

// ClearFilters resets every filter to its default.
func (c *Controller[T, R]) ClearFilters() error {
	c.mu.Lock()
	if err := c.usableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	for _, f := range c.query.Filters() {
		c.state.Filters[f.Key] = f.Default
	}
	c.state.CurrentPage = 1
	return c.refreshAndUnlock(false)
}

// State returns a copy of the current state.
func (c *Controller[T, R]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	st.Filters = lo.Assign(c.state.Filters)
	return st
}

// Snapshot returns a copy of what should currently be rendered.
func (c *Controller[T, R]) Snapshot() Snapshot[R] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copySnapLocked()
}

// URL returns the canonical location for the current state.
func (c *Controller[T, R]) URL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.URL(c.urlStateLocked())
}

// Filters returns the filters this table declares.
func (c *Controller[T, R]) Filters() []querysync.Filter {
	return c.query.Filters()
}

// Name returns the configured table name.
func (c *Controller[T, R]) Name() string {
	return c.cfg.Name
}

// Wait blocks until no search is waiting for the debounce period and the latest
// request has completed, then returns the snapshot.
func (c *Controller[T, R]) Wait(ctx context.Context) (Snapshot[R], error) {
	for {
		c.mu.Lock()
		if !c.mounted {
			c.mu.Unlock()
			return Snapshot[R]{}, ErrNotMounted
		}
		if c.closed || (!c.searchPending && !c.snap.IsLoading) {
			snap := c.copySnapLocked()
			c.mu.Unlock()
			return snap, nil
		}
		ch := c.changed
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return c.Snapshot(), ctx.Err()
		case <-ch:
		}
	}
}

// Close stops the debounce timer, cancels in-flight fetches and waits for them to return.
func (c *Controller[T, R]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.debouncer != nil {
		c.debouncer.Cancel()
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.broadcastLocked()
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Controller[T, R]) usableLocked() error {
	if c.closed {
		return ErrClosed
	}
	if !c.mounted {
		return ErrNotMounted
	}
	return nil
}

// refreshAndUnlock rewrites the URL and fetches if the request changed (or force is set).
// It must be called with c.mu held and releases it.
func (c *Controller[T, R]) refreshAndUnlock(force bool) error {
	c.syncURLLocked()
	if !force && c.requestLocked().Key() == c.latest {
		c.mu.Unlock()
		return nil
	}
	snap := c.dispatchLocked()
	c.mu.Unlock()

	c.emit(snap)
	return nil
}

// commitSearch runs on the debounce timer. A timer that fired just before
// Mount or ClearSearch cancelled it finds nothing pending and does nothing, and
// a value already replaced by newer input waits for that input's own commit.
func (c *Controller[T, R]) commitSearch(v string) {
	c.mu.Lock()
	if c.closed || !c.mounted || !c.searchPending || v != c.state.SearchTerm {
		c.mu.Unlock()
		return
	}
	snap, ok := c.commitLocked(v)
	c.mu.Unlock()

	if ok {
		c.emit(snap)
	}
}

func (c *Controller[T, R]) commitLocked(v string) (Snapshot[R], bool) {
	if v == c.state.SearchTerm {
		c.searchPending = false
	}
	c.state.DebouncedSearchTerm = v
	if c.requestLocked().Key() == c.latest {
		c.broadcastLocked()
		return Snapshot[R]{}, false
	}
	return c.dispatchLocked(), true
}

func (c *Controller[T, R]) requestLocked() paginator.PageRequest {
	return paginator.PageRequest{
		Page:     c.state.CurrentPage - 1,
		PageSize: c.state.PageSize,
		Search:   c.state.DebouncedSearchTerm,
		Filters:  c.query.ActiveFilters(c.state.Filters),
	}
}

func (c *Controller[T, R]) urlStateLocked() querysync.State {
	return querysync.State{
		Page:    c.state.CurrentPage,
		Search:  c.state.SearchTerm,
		Filters: c.state.Filters,
	}
}

func (c *Controller[T, R]) syncURLLocked() {
	c.query.Sync(c.urlStateLocked())
}

// dispatchLocked issues the request for the current state and returns the resulting snapshot.
func (c *Controller[T, R]) dispatchLocked() Snapshot[R] {
	req := c.requestLocked()
	key := req.Key()
	c.latest = key

	if c.cancelFetch != nil {
		c.cancelFetch()
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelFetch = cancel

	c.snap.Request = req
	c.snap.IsLoading = true
	if page, ok := c.cache.Get(key); ok {
		c.applyLocked(page)
		c.snap.IsLoading = true
	}
	c.broadcastLocked()

	c.l.Debugf(ctx, "table.Controller.dispatch: %s: page=%d size=%d search=%q filters=%v",
		c.cfg.Name, req.Page, req.PageSize, req.Search, req.Filters)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()

		page, err := c.cfg.Fetch(ctx, req)
		c.complete(ctx, key, page, err)
	}()

	return c.copySnapLocked()
}

func (c *Controller[T, R]) complete(ctx context.Context, key string, page paginator.Page[T], err error) {
	c.mu.Lock()
	if err == nil {
		c.cache.Add(key, page)
	}
	if c.closed || key != c.latest {
		c.mu.Unlock()
		return
	}

	if err != nil {
		c.l.Warnf(ctx, "table.Controller.complete: %s: %v", c.cfg.Name, err)
		c.snap.IsLoading = false
		c.snap.IsError = true
		c.snap.Err = err
		c.snap.ErrorMessage = c.cfg.Describe(err)
	} else {
		c.applyLocked(page)
	}
	c.broadcastLocked()
	snap := c.copySnapLocked()
	c.mu.Unlock()

	c.emit(snap)
}

func (c *Controller[T, R]) applyLocked(page paginator.Page[T]) {
	base := page.CurrentPage * page.PageSize
	c.snap.Rows = lo.Map(page.Data, func(item T, idx int) R {
		return c.cfg.Project(item, base+idx+1)
	})
	c.snap.Pagination = Pagination{
		CurrentPage: page.CurrentPage + 1,
		TotalPages:  page.TotalPages,
		PageSize:    page.PageSize,
		TotalItems:  page.TotalItems,
	}
	c.snap.IsLoading = false
	c.snap.IsError = false
	c.snap.Err = nil
	c.snap.ErrorMessage = ""
	c.snap.HasData = true
}

func (c *Controller[T, R]) copySnapLocked() Snapshot[R] {
	snap := c.snap
	snap.Rows = append([]R(nil), c.snap.Rows...)
	snap.Request.Filters = lo.Assign(c.snap.Request.Filters)
	return snap
}

func (c *Controller[T, R]) broadcastLocked() {
	c.snap.Version++
	close(c.changed)
	c.changed = make(chan struct{})
}

// emit hands snap to OnChange unless a newer snapshot was already delivered.
func (c *Controller[T, R]) emit(snap Snapshot[R]) {
	if c.cfg.OnChange == nil {
		return
	}
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	if snap.Version <= c.emitted {
		return
	}
	c.emitted = snap.Version
	c.cfg.OnChange(snap)
}
