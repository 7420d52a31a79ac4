package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/k5aq/adifcount/pkg/report"
)

var watchCmd = &cobra.Command{
	Use:   "watch <adif_file> [YYYYMMDD]",
	Short: "Keep the daily count up to date while the log grows",
	Long: `Watch prints the daily report, then prints it again every time the log
file changes. Stop with Ctrl+C.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := prepare(args)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		printReport := func(ctx context.Context) error {
			summary, err := q.service.Summarize(ctx, q.date())
			if err != nil {
				return describe(err)
			}
			return report.Text(cmd.OutOrStdout(), summary)
		}

		if err := printReport(ctx); err != nil {
			return err
		}

		events, err := q.service.Watch(ctx)
		if err != nil {
			return describe(err)
		}

		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				slog.Debug("log changed", "event", e.String())
				if err := printReport(ctx); err != nil {
					// The logger may be mid-rewrite; keep watching.
					slog.Warn("refresh failed", "error", err)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
