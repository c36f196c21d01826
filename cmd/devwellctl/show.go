package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func printJSON(cmd *cobra.Command, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return nil
}

func newStatsCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the daily rollup for a date (default today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if date == "" {
				return printJSON(cmd, store.TodayStats(cmd.Context()))
			}
			return printJSON(cmd, store.StatsForDate(cmd.Context(), date))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "calendar date, YYYY-MM-DD")
	return cmd
}

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show lifetime totals and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return printJSON(cmd, store.Progress(cmd.Context()))
		},
	}
}

func newSessionsCmd() *cobra.Command {
	var date, from, to string
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded break sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			switch {
			case date != "":
				return printJSON(cmd, store.BreakSessionsForDate(ctx, date))
			case from != "" || to != "":
				if from == "" || to == "" {
					return fmt.Errorf("--from and --to must be given together")
				}
				return printJSON(cmd, store.BreakSessionsForDateRange(ctx, from, to))
			default:
				return printJSON(cmd, store.BreakSessions(ctx))
			}
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "only sessions on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD, inclusive)")
	return cmd
}
