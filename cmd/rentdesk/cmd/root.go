package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// EnvToken is the environment variable read for the session token.
const EnvToken = "RENTDESK_DASHBOARD_TOKEN"

type globalOptions struct {
	APIURL   string
	Token    string
	PageSize int
	Debounce time.Duration
	Verbose  bool
}

// NewRootCommand builds the rentdesk command tree.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "rentdesk",
		Short: "rentdesk: property and rent management from the terminal",
		Long: `rentdesk: property and rent management from the terminal
Browse the paginated tables of a rentdesk API: properties, payments, due rents,
tenants, admins, locations and notifications.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.APIURL, "api-url", "", "API base URL (overrides dashboard.api_url)")
	pf.StringVar(&opts.Token, "token", "", "session token (overrides "+EnvToken+")")
	pf.IntVar(&opts.PageSize, "size", 0, "rows per page (overrides dashboard.page_size)")
	pf.DurationVar(&opts.Debounce, "debounce", 0, "search debounce delay (overrides dashboard.debounce)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "log requests")

	root.AddCommand(
		tablesCmd(),
		loginCmd(opts),
		whoamiCmd(opts),
		listCmd(opts),
		browseCmd(opts),
	)
	return root
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}
