// Package sqlbuilder assembles the WHERE and paging clauses of list queries
// with numbered Postgres placeholders.
package sqlbuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Where collects AND-ed conditions. Conditions use ? placeholders which are
// numbered in the order they are added.
type Where struct {
	conds []string
	args  []any
}

// Add appends cond with one argument per ? in cond.
func (w *Where) Add(cond string, args ...any) *Where {
	var b strings.Builder
	i := 0
	for _, r := range cond {
		if r == '?' && i < len(args) {
			w.args = append(w.args, args[i])
			b.WriteString("$" + strconv.Itoa(len(w.args)))
			i++
			continue
		}
		b.WriteRune(r)
	}
	w.conds = append(w.conds, b.String())
	return w
}

// AddIf calls Add only when value is not empty.
func (w *Where) AddIf(value, cond string) *Where {
	if value == "" {
		return w
	}
	return w.Add(cond, value)
}

// Search matches term case-insensitively as a substring of any of cols.
// An empty term adds nothing.
func (w *Where) Search(term string, cols ...string) *Where {
	term = strings.TrimSpace(term)
	if term == "" || len(cols) == 0 {
		return w
	}
	w.args = append(w.args, "%"+EscapeLike(term)+"%")
	ph := "$" + strconv.Itoa(len(w.args))
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " ILIKE " + ph
	}
	w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
	return w
}

// SQL renders " WHERE ..." or the empty string.
func (w *Where) SQL() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// Args returns the arguments in placeholder order.
func (w *Where) Args() []any {
	return append([]any(nil), w.args...)
}

// Page renders " LIMIT $n OFFSET $m" after the current arguments and returns the
// full argument list for it.
func (w *Where) Page(limit, offset int) (string, []any) {
	args := append(w.Args(), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

// EscapeLike escapes LIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
