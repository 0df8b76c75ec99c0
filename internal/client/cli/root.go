package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/mhpportal/internal/client/config"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
)

// appFactory builds the App a command runs against. Tests replace it.
type appFactory func(ctx context.Context, opts Options) (*App, error)

// NewRootCommand returns the client command tree. Without a subcommand it
// starts the interactive REPL.
func NewRootCommand(cfg *config.Config, log logging.Logger) *cobra.Command {
	return newRootCommand(func(ctx context.Context, opts Options) (*App, error) {
		return NewApp(ctx, cfg, log, opts)
	})
}

func newRootCommand(factory appFactory) *cobra.Command {
	var ephemeral bool

	withApp := func(run func(ctx context.Context, a *App) error) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := factory(ctx, Options{Ephemeral: ephemeral, In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			defer a.Close()
			return run(ctx, a)
		}
	}

	root := &cobra.Command{
		Use:   "client",
		Short: "MHP reporting portal client",
		Long: `Terminal client for the MHP reporting portal. Usage:

	client              interactive session
	client login        sign in and store the session
	client dashboard    print the reporting dashboard
`,
		SilenceUsage: true,
		RunE: withApp(func(ctx context.Context, a *App) error {
			fmt.Fprintln(a.out, "Welcome to the MHP reporting portal (type 'help' for commands)")
			if err := a.Dashboard(ctx); err != nil {
				return err
			}
			runREPL(ctx, a, a.getStatus, a.reader, a.out)
			return nil
		}),
	}
	root.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the session in memory only")

	root.AddCommand(
		&cobra.Command{
			Use:   "login",
			Short: "Sign in and store the session",
			RunE:  withApp(func(ctx context.Context, a *App) error { return a.Login(ctx) }),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Forget the stored session",
			RunE:  withApp(func(ctx context.Context, a *App) error { return a.Logout(ctx) }),
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the signed-in user",
			RunE:  withApp(func(ctx context.Context, a *App) error { return a.Whoami(ctx) }),
		},
		&cobra.Command{
			Use:   "dashboard",
			Short: "Print the reporting dashboard",
			RunE:  withApp(func(ctx context.Context, a *App) error { return a.Dashboard(ctx) }),
		},
		&cobra.Command{
			Use:   "admin",
			Short: "Print the admin user statistics",
			RunE:  withApp(func(ctx context.Context, a *App) error { return a.Admin(ctx) }),
		},
	)
	return root
}
