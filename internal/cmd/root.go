package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yasminaliabdi/event-planner/internal/config"
	"github.com/yasminaliabdi/event-planner/internal/errors"
	"github.com/yasminaliabdi/event-planner/internal/guard"
	"github.com/yasminaliabdi/event-planner/internal/log"
	"github.com/yasminaliabdi/event-planner/internal/platform"
	"github.com/yasminaliabdi/event-planner/internal/session"
	"github.com/yasminaliabdi/event-planner/internal/ux"
)

var (
	cfgFile    string
	apiURLFlag string
	outputFlag string

	logger   *log.Logger
	client   *platform.Client
	sessions *session.Manager
)

var rootCmd = &cobra.Command{
	Use:   "eventplanner",
	Short: "Command-line client for the event planner platform",
	Long: `eventplanner is a CLI client for the event planner platform.
It lets attendees browse and book events, organizers manage their listings
and approve bookings, and administrators oversee the whole platform.

Sessions persist across invocations; log in once with 'eventplanner auth login'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// ExecuteContext runs the root command
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initApp() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if apiURLFlag != "" {
		cfg.APIBaseURL = apiURLFlag
	}

	logger = log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	})
	log.SetDefaultLogger(logger)

	client = platform.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	store := session.NewStore(cfg.DataDir, os.Getenv("EVENTPLANNER_STORE_KEY"))
	sessions = session.NewManager(client, store, logger,
		session.WithNavigator(func(path string) {
			if path == guard.LoginRoute {
				fmt.Fprintln(os.Stderr, "Run 'eventplanner auth login' to sign in again.")
			}
		}),
	)
	client.SetTokenSource(sessions)

	return nil
}

// requireRoles restores the persisted session and checks it against the
// command's allowed roles before any backend call is made. An empty allowed
// set admits any authenticated caller.
func requireRoles(ctx context.Context, allowed ...platform.Role) (session.Snapshot, error) {
	sessions.Initialize(ctx)
	snap := sessions.Current()

	decision := guard.Evaluate(snap, allowed)
	switch decision.State {
	case guard.Allowed:
		return snap, nil
	case guard.Denied:
		if decision.RedirectTo == guard.LoginRoute {
			return snap, errors.NewNotLoggedInError()
		}
		return snap, errors.NewForbiddenError(string(snap.Identity.Role))
	default:
		// Initialize runs to completion before Current, so a pending
		// decision cannot be observed on this path.
		return snap, errors.NewNotLoggedInError()
	}
}

// printResult renders v with the selected --output format, falling back to
// the provided renderer for the default text format.
func printResult(v interface{}, text func()) error {
	if outputFlag == "" || outputFlag == "text" {
		text()
		return nil
	}

	f, err := ux.NewFormatter(outputFlag, nil)
	if err != nil {
		return err
	}
	return f.Format(v)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.eventplanner/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "backend API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "output format (text, json, yaml)")
}
