package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/k5aq/adifcount"
	"github.com/k5aq/adifcount/pkg/core"
	"github.com/k5aq/adifcount/pkg/report"
)

var (
	verbose    bool
	configPath string
	homeDir    string
	timezone   string

	// now is swapped in tests.
	now = time.Now
)

// rootCmd counts the unique calls of one day when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "adifcount <adif_file> [YYYYMMDD]",
	Short: "Count unique call signs logged on a given day",
	Long: `adifcount reads an ADIF log (e.g. the one WSJT-X writes) and lists the
distinct call signs worked on one day. The day defaults to today in UTC,
the zone QSO_DATE is logged in.

Relative log paths are resolved against the configured home directory
(--home, $ADIFCOUNT_HOME, or "home" in the config file).`,
	Example: `  adifcount wsjtx_log.adi
  adifcount --home ~/.local/share/WSJT-X wsjtx_log.adi 20240115`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := prepare(args)
		if err != nil {
			return err
		}

		summary, err := q.service.Summarize(cmd.Context(), q.date())
		if err != nil {
			return describe(err)
		}

		slog.Debug("service state", "state", q.service.State())
		return report.Text(cmd.OutOrStdout(), summary)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/adifcount/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "Directory relative log paths are resolved against")
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "", "IANA time zone for the default date (default UTC)")
}

// query is a resolved invocation: the service and how to pick its date.
type query struct {
	service *core.Service
	// date returns the query date. Without an explicit argument it is
	// recomputed on every call so long-running commands follow the clock.
	date func() string
}

func prepare(args []string) (*query, error) {
	cfg, err := adifcount.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if homeDir != "" {
		cfg.Home = homeDir
	}
	if timezone != "" {
		cfg.Timezone = timezone
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	dateArg := ""
	if len(args) > 1 {
		dateArg = args[1]
	}
	// Validate up front, before touching the file.
	fixed, err := adifcount.ResolveDate(dateArg, now(), loc)
	if err != nil {
		return nil, err
	}
	date := func() string { return fixed }
	if dateArg == "" {
		date = func() string { return adifcount.Today(adifcount.WithClock(now), adifcount.WithLocation(loc)) }
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	svc, err := adifcount.New(args[0], append(opts, adifcount.WithLogger(slog.Default()))...)
	if err != nil {
		return nil, describe(err)
	}

	return &query{service: svc, date: date}, nil
}

// describe turns service errors into messages for the console.
func describe(err error) error {
	switch {
	case errors.Is(err, core.ErrFileNotFound), errors.Is(err, core.ErrAmbiguousPath):
		return err
	default:
		return fmt.Errorf("processing file: %w", err)
	}
}
