package cli

import (
	"os"
	"os/signal"
	"syscall"

	"rotation_notification_bot/internal/app"
	"rotation_notification_bot/internal/infra/config"
	"rotation_notification_bot/internal/infra/logger"
	"rotation_notification_bot/internal/infra/scheduler"

	"github.com/spf13/cobra"
)

func newServeCmd(scheduleFile *string) *cobra.Command {
	var dryRun bool
	var syncGroup bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the announcement scheduler until interrupted",
		Long: `serve announces the current week's roster on the CRON_SPEC_ANNOUNCE
schedule (default: Monday 09:00). The announcement log keeps repeated
fires within the same week from double-posting, so the process can be
restarted freely.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg)
			mainLog := logger.Component("serve")

			sched, err := loadSchedule(cfg, *scheduleFile)
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

			info := sched.CycleInfo()
			mainLog.Infof("Schedule loaded: %d-week cycle from %s to %s.",
				info.CycleLength, info.StartDate, info.EndDate)

			svc := app.NewRotationService(sched, clients, repo, logger.Component("rotation"))
			announceScheduler := scheduler.NewAnnounceScheduler(
				svc, logger.Component("scheduler"), cfg.CronSpecAnnounce, syncGroup,
			)
			if err := announceScheduler.Start(); err != nil {
				return err
			}

			// Block until a signal is received.
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			mainLog.Info("Shutting down...")
			announceScheduler.Stop()
			mainLog.Info("Shut down gracefully.")
			return nil
		},
	}

	c.Flags().BoolVar(&dryRun, "dry-run", false, "log messages instead of sending them")
	c.Flags().BoolVar(&syncGroup, "sync-group", false, "also sync the platform user group on each announcement")
	return c
}
