package cli

import (
	"fmt"
	"time"

	"rotation_notification_bot/internal/domain/schedule"
	"rotation_notification_bot/internal/infra/config"

	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var scheduleFile string

	root := &cobra.Command{
		Use:   "rotation-bot",
		Short: "Resolve and announce the weekly duty rotation",
		Long: `rotation-bot parses a weekly rotation table, resolves which people hold
the release-artistry and focused-work duties on a given date, and can
announce the result to Slack and Telegram. The schedule repeats in a
cycle, so dates beyond the listed weeks use the repeating pattern.

The schedule comes from the SCHEMA environment variable (a file path or
the table text itself) unless --schedule-file is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&scheduleFile, "schedule-file", "",
		"path to a schedule file (overrides the SCHEMA environment variable)")

	root.AddCommand(
		newResolveCmd(&scheduleFile),
		newCycleInfoCmd(&scheduleFile),
		newNotifyCmd(&scheduleFile),
		newServeCmd(&scheduleFile),
		newHistoryCmd(),
	)
	return root
}

// loadSchedule builds the schedule from the --schedule-file flag or the
// SCHEMA environment value.
func loadSchedule(cfg *config.AppConfig, scheduleFile string) (schedule.Schedule, error) {
	if scheduleFile != "" {
		return schedule.Load(schedule.FromFile(scheduleFile))
	}
	if cfg.Schema == "" {
		return nil, fmt.Errorf("SCHEMA environment variable is not set; set it to the schedule file path or pass --schedule-file")
	}
	return schedule.Load(schedule.SourceFromEnv(cfg.Schema))
}

// targetDate parses the --date flag, defaulting to today.
func targetDate(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now(), nil
	}
	return schedule.ParseDate(flag)
}
