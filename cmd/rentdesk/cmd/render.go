package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"rentdesk-srv/internal/dashboard"
)

func render(w io.Writer, v dashboard.View) {
	fmt.Fprintf(w, "%s  %s\n", v.Title, v.URL)

	if v.Error != "" {
		fmt.Fprintf(w, "! %s\n", v.Error)
		if v.Stale {
			fmt.Fprintln(w, "  showing results from the last successful load (:retry to try again)")
		}
	}

	switch {
	case v.Empty != nil:
		fmt.Fprintf(w, "\n  %s\n  %s\n  > %s\n\n", v.Empty.Title, v.Empty.Message, v.Empty.CallToAction)
	case len(v.Rows) > 0:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(v.Headers, "\t"))
		for _, row := range v.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		_ = tw.Flush()
	}

	if v.ShowPagination {
		p := v.Pagination
		fmt.Fprintf(w, "Page %d of %d, %d items\n", p.CurrentPage, p.TotalPages, p.TotalItems)
	}
}

func renderJSON(w io.Writer, v dashboard.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
