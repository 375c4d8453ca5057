package cli

import (
	"encoding/json"
	"fmt"

	"rotation_notification_bot/internal/app"
	"rotation_notification_bot/internal/infra/config"
	"rotation_notification_bot/internal/infra/logger"

	"github.com/spf13/cobra"
)

func newNotifyCmd(scheduleFile *string) *cobra.Command {
	var date string
	var pretty bool
	var dryRun bool
	var syncGroup bool

	c := &cobra.Command{
		Use:   "notify",
		Short: "Announce the duty assignment to the configured chat platforms",
		Long: `notify resolves the duty assignment for the target date, prints it as
JSON, and posts it to every configured platform. With --dry-run the
messages are logged instead of sent. With --sync-group each platform's
named user group is reconciled to the current assignees.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg)

			sched, err := loadSchedule(cfg, *scheduleFile)
			if err != nil {
				return err
			}
			target, err := targetDate(date)
			if err != nil {
				return err
			}
			clients, err := buildClients(cfg, dryRun)
			if err != nil {
				return err
			}
			repo, closeRepo, err := buildAnnounceRepo(cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			svc := app.NewRotationService(sched, clients, repo, logger.Component("rotation"))

			assignment, err := svc.ResolveFor(target)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(scheduleResult{Schedule: assignment}); err != nil {
				return err
			}

			opts := app.AnnounceOptions{SyncGroup: syncGroup}
			if err := svc.Announce(cmd.Context(), target, opts); err != nil {
				return err
			}

			for _, client := range clients {
				if dryRun {
					fmt.Fprintf(cmd.OutOrStdout(), "[DRY RUN] Would send notification to %s (%s)\n", client.Name(), client.Target())
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Notification sent to %s (%s)\n", client.Name(), client.Target())
				}
			}
			return nil
		},
	}

	c.Flags().StringVar(&date, "date", "", `target date like "Feb 9, 2026" (defaults to today)`)
	c.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the JSON output")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "log messages instead of sending them")
	c.Flags().BoolVar(&syncGroup, "sync-group", false, "also sync the platform user group to the current assignees")
	return c
}
