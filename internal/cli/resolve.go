package cli

import (
	"encoding/json"

	"rotation_notification_bot/internal/domain/schedule"
	"rotation_notification_bot/internal/infra/config"

	"github.com/spf13/cobra"
)

// scheduleResult is the JSON envelope the original notifier printed.
type scheduleResult struct {
	Schedule schedule.Assignment `json:"schedule"`
}

func newResolveCmd(scheduleFile *string) *cobra.Command {
	var date string
	var pretty bool

	c := &cobra.Command{
		Use:   "resolve",
		Short: "Print the duty assignment for a date as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			sched, err := loadSchedule(cfg, *scheduleFile)
			if err != nil {
				return err
			}
			target, err := targetDate(date)
			if err != nil {
				return err
			}
			assignment, err := sched.Resolve(target)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(scheduleResult{Schedule: assignment})
		},
	}

	c.Flags().StringVar(&date, "date", "", `target date like "Feb 9, 2026" (defaults to today)`)
	c.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the JSON output")
	return c
}

func newCycleInfoCmd(scheduleFile *string) *cobra.Command {
	var pretty bool

	c := &cobra.Command{
		Use:   "cycle-info",
		Short: "Print the rotation cycle length and date range as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			sched, err := loadSchedule(cfg, *scheduleFile)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(sched.CycleInfo())
		},
	}

	c.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the JSON output")
	return c
}
