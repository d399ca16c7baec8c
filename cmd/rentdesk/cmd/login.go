package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"rentdesk-srv/internal/dashboard"

	"github.com/moby/term"
	"github.com/spf13/cobra"
)

type loginOptions struct {
	Email    string
	Password string
}

func loginCmd(g *globalOptions) *cobra.Command {
	var opts loginOptions
	cmd := &cobra.Command{
		Use:          "login",
		Short:        "sign in and print the session token",
		SilenceUsage: true,
		Long: `login exchanges an email and password for a session token. Export the printed
line to authenticate later commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, g, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.Email, "email", "e", "", "account email")
	fs.StringVarP(&opts.Password, "password", "p", "", "account password, prompted when empty")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runLogin(cmd *cobra.Command, g *globalOptions, opts loginOptions) error {
	s, err := g.session()
	if err != nil {
		return err
	}

	if opts.Password == "" {
		opts.Password, err = readPassword(cmd.InOrStdin(), cmd.OutOrStdout(), "Password: ")
		if err != nil {
			return err
		}
	}

	sess, err := s.api.Login(cmd.Context(), opts.Email, opts.Password)
	if err != nil {
		return fmt.Errorf("login failed: %s", dashboard.Describe(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Signed in as %s (%s)\n", dashboard.DisplayName(sess.User.FirstName, sess.User.LastName), sess.User.Role)
	fmt.Fprintf(out, "export %s=%s\n", EnvToken, sess.Token)
	return nil
}

func whoamiCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "whoami",
		Short:        "show the user behind the session token",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.session()
			if err != nil {
				return err
			}
			u, err := s.api.Me(cmd.Context())
			if err != nil {
				return errors.New(dashboard.Describe(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> %s\n", dashboard.DisplayName(u.FirstName, u.LastName), u.Email, u.Role)
			return nil
		},
	}
}

// readPassword reads one line from in, with echo disabled when in is a terminal.
func readPassword(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	if f, ok := in.(*os.File); ok && term.IsTerminal(f.Fd()) {
		fd := f.Fd()
		state, err := term.SaveState(fd)
		if err != nil {
			return "", err
		}
		if err := term.DisableEcho(fd, state); err != nil {
			return "", err
		}
		defer func() {
			_ = term.RestoreTerminal(fd, state)
			fmt.Fprintln(out)
		}()
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
