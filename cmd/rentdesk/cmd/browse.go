package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rentdesk-srv/internal/dashboard"
	"rentdesk-srv/pkg/querysync"

	"github.com/spf13/cobra"
)

const browseHelp = `Commands:
  TEXT              search; applied once typing pauses
  :search [TEXT]    search for TEXT, or clear the search
  :filter KEY=VAL   set a filter, VAL "all" removes it
  :page N           go to page N
  :next, :prev      move one page
  :size N           change the page size
  :retry            repeat the last request
  :clear            clear search and filters
  :back             return to the previous view
  :url              print the current URL
  :help             show this help
  :quit             exit`

type outcome int

const (
	redraw outcome = iota
	stay
	quit
)

var errUnknownCommand = errors.New("unknown command, try :help")

func browseCmd(g *globalOptions) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:          "browse TABLE",
		Short:        "page through a table interactively",
		Args:         cobra.ExactArgs(1),
		ValidArgs:    tableNames(),
		SilenceUsage: true,
		Long:         "browse opens TABLE and reads commands from stdin.\n\n" + browseHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, g, args[0], query)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "URL query to start from")

	return cmd
}

type browser struct {
	t       dashboard.Table
	history *querysync.History
	out     io.Writer
}

func runBrowse(cmd *cobra.Command, g *globalOptions, name, query string) error {
	s, err := g.session()
	if err != nil {
		return err
	}

	history := querysync.NewHistory("")
	t, err := s.open(name, querysync.NavigatorFunc(history.Replace))
	if err != nil {
		return err
	}
	defer t.Close()

	ctx := cmd.Context()
	if err := t.Mount(ctx, query); err != nil {
		return err
	}

	b := &browser{t: t, history: history, out: cmd.OutOrStdout()}
	if err := b.show(ctx); err != nil {
		return err
	}

	sc := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(b.out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(b.out)
			return sc.Err()
		}

		next, err := b.exec(ctx, strings.TrimSpace(sc.Text()))
		if err != nil {
			fmt.Fprintf(b.out, "! %v\n", err)
			continue
		}
		switch next {
		case quit:
			return nil
		case redraw:
			if err := b.show(ctx); err != nil {
				return err
			}
		}
	}
}

func (b *browser) show(ctx context.Context) error {
	v, err := b.t.Wait(ctx)
	if err != nil {
		return err
	}
	render(b.out, v)
	return nil
}

func (b *browser) exec(ctx context.Context, line string) (outcome, error) {
	if line == "" {
		return redraw, nil
	}
	if !strings.HasPrefix(line, ":") {
		return b.navigate("search", line)
	}

	verb, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "q", "quit":
		return quit, nil
	case "h", "help":
		fmt.Fprintln(b.out, browseHelp)
		return stay, nil
	case "url":
		fmt.Fprintln(b.out, b.t.URL())
		return stay, nil
	case "retry":
		return redraw, b.t.Retry()
	case "back":
		return redraw, b.back(ctx)
	}

	if !isNavigation(verb) {
		return stay, errUnknownCommand
	}
	return b.navigate(verb, arg)
}

// back remounts the previous view. The page size is not part of the URL, so
// it is carried over from the current view.
func (b *browser) back(ctx context.Context) error {
	size := b.t.State().PageSize
	_, query, _ := strings.Cut(b.history.Back(), "?")
	if err := b.t.Mount(ctx, query); err != nil {
		return err
	}
	if b.t.State().PageSize == size {
		return nil
	}
	return b.t.SetPageSize(size)
}

func isNavigation(verb string) bool {
	switch verb {
	case "s", "search", "f", "filter", "p", "page", "n", "next", "prev", "size", "clear":
		return true
	}
	return false
}

// navigate applies a state change as a new history entry. The entry is dropped when
// the change is rejected.
func (b *browser) navigate(verb, arg string) (outcome, error) {
	b.history.Push(b.t.URL())
	next, err := b.apply(verb, arg)
	if err != nil {
		b.history.Back()
	}
	return next, err
}

func (b *browser) apply(verb, arg string) (outcome, error) {
	switch verb {
	case "s", "search":
		if arg == "" {
			return redraw, b.t.ClearSearch()
		}
		return redraw, b.t.SetSearchTerm(arg)
	case "f", "filter":
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return stay, errors.New("usage: :filter KEY=VALUE")
		}
		return redraw, b.t.SetFilter(strings.TrimSpace(k), strings.TrimSpace(v))
	case "p", "page":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return stay, errors.New("usage: :page N")
		}
		return redraw, b.t.SetPage(n)
	case "n", "next":
		return redraw, b.t.SetPage(b.t.State().CurrentPage + 1)
	case "prev":
		page := b.t.State().CurrentPage
		if page <= 1 {
			return stay, errors.New("already on the first page")
		}
		return redraw, b.t.SetPage(page - 1)
	case "size":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return stay, errors.New("usage: :size N")
		}
		return redraw, b.t.SetPageSize(n)
	case "clear":
		if err := b.t.ClearSearch(); err != nil {
			return stay, err
		}
		return redraw, b.t.ClearFilters()
	default:
		return stay, errUnknownCommand
	}
}
