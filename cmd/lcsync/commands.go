package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/lcsync/internal/scheduler"
	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configDir string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lcsync",
		Short: "Sync accepted LeetCode submissions into a Notion review database",
		Long: `lcsync reads the most recent accepted submissions of a LeetCode user and
records them in a Notion database used for spaced repetition: new problems
are added with a one-day repetition gap, re-solved problems advance to the
next gap.

Without a subcommand lcsync runs one sync and exits.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", ".",
		"directory holding the optional .env and config.yaml files")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"override server.log_level (debug, info, warn, error)")

	cmd.AddCommand(newSyncCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newScheduleCmd(opts))

	return cmd
}

func newSyncCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one sync and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), opts)
		},
	}
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an HTTP endpoint that runs a sync per request",
		Long: `Start an HTTP server exposing:

  GET  /healthz    health probe (no auth)
  POST /api/sync   run one sync (basic auth)
  GET  /           run one sync (basic auth)

The server refuses to start unless auth.username and auth.password or
auth.password_hash are configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplicationFromFlags(opts)
			if err != nil {
				return err
			}
			if port > 0 {
				app.config.Server.Port = port
			}

			router, err := app.setupRouter()
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return app.startHTTPServer(ctx, router)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override server.port")

	return cmd
}

func newScheduleCmd(opts *rootOptions) *cobra.Command {
	var now bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the sync on the sync.schedule cron expression until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplicationFromFlags(opts)
			if err != nil {
				return err
			}

			sched, err := scheduler.New(app.syncService, app.config.Sync, app.logger)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			sched.Start(ctx)
			if now {
				sched.RunNow()
			}

			<-ctx.Done()
			app.logger.Info("shutting down scheduler")
			sched.Stop()
			return nil
		},
	}

	cmd.Flags().BoolVar(&now, "now", false, "also run one sync immediately")

	return cmd
}

// runSync performs a single sync, the default action of the command.
func runSync(parent context.Context, opts *rootOptions) error {
	app, err := newApplicationFromFlags(opts)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(parent)
	defer stop()

	result, err := app.syncService.Run(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "synced %d submissions: %d created, %d updated, %d unchanged\n",
		result.Fetched, len(result.Created), len(result.Updated), len(result.Unchanged))
	return nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
