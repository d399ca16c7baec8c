package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"rentdesk-srv/internal/dashboard"
	"rentdesk-srv/pkg/querysync"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "tables",
		Short:        "list the available tables and their filters",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPATH\tFILTERS")
			for _, info := range dashboard.Tables() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, info.Path, describeFilters(info.Filters))
			}
			return tw.Flush()
		},
	}
}

func describeFilters(filters []querysync.Filter) string {
	if len(filters) == 0 {
		return "-"
	}
	return strings.Join(lo.Map(filters, func(f querysync.Filter, _ int) string {
		if len(f.Allowed) == 0 {
			return f.Key + "=ID"
		}
		return f.Key + "=" + strings.Join(f.Allowed, "|")
	}), " ")
}

func tableNames() []string {
	return lo.Map(dashboard.Tables(), func(info dashboard.Info, _ int) string { return info.Name })
}
