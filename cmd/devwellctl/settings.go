package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	devwell "github.com/SiddDevCS/Dev-Well"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update user settings",
	}
	cmd.AddCommand(newSettingsShowCmd())
	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings (stored values over defaults)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return printJSON(cmd, store.Settings(cmd.Context()))
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var (
		frequency  int
		goal       int
		notify     bool
		style      string
		workStart  string
		workEnd    string
		breakTypes string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings; only the given flags change",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := devwell.SettingsPatch{}
			flags := cmd.Flags()

			if flags.Changed("frequency") {
				patch.BreakFrequency = &frequency
			}
			if flags.Changed("goal") {
				patch.DailyGoal = &goal
			}
			if flags.Changed("notifications") {
				patch.NotificationsEnabled = &notify
			}
			if flags.Changed("reminder-style") {
				rs := devwell.ReminderStyle(style)
				if rs != devwell.ReminderGentle && rs != devwell.ReminderPersistent {
					return fmt.Errorf("reminder style must be gentle or persistent")
				}
				patch.ReminderStyle = &rs
			}
			if flags.Changed("work-start") || flags.Changed("work-end") {
				if workStart == "" || workEnd == "" {
					return fmt.Errorf("--work-start and --work-end must be given together")
				}
				patch.WorkingHours = &devwell.WorkingHours{Start: workStart, End: workEnd}
			}
			if flags.Changed("break-types") {
				var types []devwell.BreakType
				for _, raw := range strings.Split(breakTypes, ",") {
					bt := devwell.BreakType(strings.TrimSpace(raw))
					if !bt.Valid() {
						return fmt.Errorf("unknown break type %q", bt)
					}
					types = append(types, bt)
				}
				patch.EnabledBreakTypes = types
			}

			store, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			if err := store.UpdateSettings(ctx, patch); err != nil {
				return err
			}
			if err := store.Flush(ctx); err != nil {
				return err
			}
			return printJSON(cmd, store.Settings(ctx))
		},
	}
	cmd.Flags().IntVar(&frequency, "frequency", 0, "break reminder frequency, minutes")
	cmd.Flags().IntVar(&goal, "goal", 0, "daily break goal")
	cmd.Flags().BoolVar(&notify, "notifications", true, "enable notifications")
	cmd.Flags().StringVar(&style, "reminder-style", "", "gentle or persistent")
	cmd.Flags().StringVar(&workStart, "work-start", "", "working hours start, HH:MM")
	cmd.Flags().StringVar(&workEnd, "work-end", "", "working hours end, HH:MM")
	cmd.Flags().StringVar(&breakTypes, "break-types", "", "comma-separated enabled break types")
	return cmd
}
