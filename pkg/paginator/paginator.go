package paginator

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Adjust normalizes the pagination parameters to valid values.
// Negative pages fall back to DefaultPage; pages beyond the last one are kept,
// capped only where Page*Size would overflow the offset.
func (q *PageQuery) Adjust() {
	if q.Page < 0 {
		q.Page = DefaultPage
	}

	if q.Size < 1 {
		q.Size = DefaultSize
	} else if q.Size > MaxSize {
		q.Size = MaxSize
	}

	if maxPage := math.MaxInt / q.Size; q.Page > maxPage {
		q.Page = maxPage
	}
}

// Offset calculates the database offset for the current page.
func (q PageQuery) Offset() int {
	return q.Page * q.Size
}

// TotalPages returns ceil(total / size), or 0 when either is not positive.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// NewPage builds a Page for the given query. A nil slice is replaced by an empty one
// so the wire form is always an array.
func NewPage[T any](data []T, total int, q PageQuery) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:        data,
		TotalItems:  total,
		TotalPages:  TotalPages(total, q.Size),
		CurrentPage: q.Page,
		PageSize:    q.Size,
	}
}

// Map converts the items of p with fn and keeps its metadata.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	return Page[R]{
		Data:        lo.Map(p.Data, func(item T, _ int) R { return fn(item) }),
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		PageSize:    p.PageSize,
	}
}

// Empty reports whether the page carries no items.
func (p Page[T]) Empty() bool {
	return len(p.Data) == 0
}

// Values encodes the request as wire query parameters. Empty search and empty
// filter values are never sent.
func (r PageRequest) Values() url.Values {
	v := url.Values{}
	v.Set(ParamPage, strconv.Itoa(r.Page))
	v.Set(ParamSize, strconv.Itoa(r.PageSize))
	if r.Search != "" {
		v.Set(ParamSearch, r.Search)
	}
	for k, val := range r.Filters {
		if val == "" {
			continue
		}
		v.Set(k, val)
	}
	return v
}

// Key identifies the full parameter tuple. Two requests with equal keys fetch the same page.
func (r PageRequest) Key() string {
	keys := make([]string, 0, len(r.Filters))
	for k, val := range r.Filters {
		if val != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(strconv.Itoa(r.Page))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(r.PageSize))
	b.WriteByte('|')
	b.WriteString(url.QueryEscape(r.Search))
	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(r.Filters[k]))
	}
	return b.String()
}
