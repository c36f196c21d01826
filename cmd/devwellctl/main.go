// devwellctl is a maintenance CLI for the on-device DevWell data store:
// inspect stats, sessions and progress, tweak settings, record app opens,
// and reset all data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	devwell "github.com/SiddDevCS/Dev-Well"
	"github.com/SiddDevCS/Dev-Well/internal/config"
	"github.com/SiddDevCS/Dev-Well/internal/logger"
	"github.com/SiddDevCS/Dev-Well/kv/sqlitekv"
)

var rootCmd = &cobra.Command{
	Use:   "devwellctl",
	Short: "Inspect and maintain the local DevWell wellness data store",
}

// openStore builds the data layer from DEVWELL_* environment configuration.
// The returned cleanup flushes pending writes and closes the store.
func openStore(cmd *cobra.Command) (*devwell.Store, func(), error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New("devwellctl").Level(cfg.Level())

	db, err := sqlitekv.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.DBPath, err)
	}

	store, err := devwell.New(db,
		devwell.WithLogger(log),
		devwell.WithShards(cfg.Shards),
		devwell.WithQueueSize(cfg.QueueSize),
	)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := store.Flush(cmd.Context()); err != nil {
			log.Warn().Err(err).Msg("flush on exit failed")
		}
		_ = store.Close()
		_ = db.Close()
	}
	return store, cleanup, nil
}

func main() {
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newProgressCmd())
	rootCmd.AddCommand(newSessionsCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newOnboardingCmd())
	rootCmd.AddCommand(newResetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Record an app open for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.RecordAppOpen(cmd.Context()); err != nil {
				return err
			}
			if err := store.Flush(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "app opens today: %d\n", store.TodayAppOpens(cmd.Context()))
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all locally stored wellness data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to wipe data without --yes")
			}
			store, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all wellness data removed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}

func newOnboardingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "Onboarding state operations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Print stored onboarding preferences as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out, ok := store.ExportOnboardingPreferences(cmd.Context())
			if !ok {
				return fmt.Errorf("no onboarding preferences stored")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	})
	return cmd
}
