package scheduler

import (
	"context"
	"time"

	"rotation_notification_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Announcer is the part of the rotation service the scheduler drives.
type Announcer interface {
	Announce(ctx context.Context, target time.Time, opts app.AnnounceOptions) error
}

// AnnounceScheduler runs the weekly announcement on a cron spec. The
// announcement log makes repeated fires within the same week no-ops, so
// a daily spec is also safe.
type AnnounceScheduler struct {
	cronEngine *cron.Cron
	service    Announcer
	logger     *logrus.Entry
	cronSpec   string
	syncGroup  bool
}

func NewAnnounceScheduler(
	service Announcer,
	logger *logrus.Entry,
	cronSpec string, // e.g. "0 9 * * 1" (9:00 AM every Monday)
	syncGroup bool,
) *AnnounceScheduler {
	return &AnnounceScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		service:    service,
		logger:     logger,
		cronSpec:   cronSpec,
		syncGroup:  syncGroup,
	}
}

// Start registers the announce job and starts the cron engine.
func (s *AnnounceScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for weekly announcement.")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		opts := app.AnnounceOptions{SyncGroup: s.syncGroup, SkipIfAnnounced: true}
		if err := s.service.Announce(ctx, time.Now(), opts); err != nil {
			s.logger.Errorf("Weekly announcement failed: %v", err)
			return
		}
		s.logger.Info("Weekly announcement completed.")
	})
	if err != nil {
		return err
	}

	s.cronEngine.Start()
	s.logger.Infof("Announce scheduler started with spec %q.", s.cronSpec)
	return nil
}

// Stop halts the cron engine and waits for a running job to finish.
func (s *AnnounceScheduler) Stop() {
	s.logger.Info("Stopping announce scheduler...")
	ctx := s.cronEngine.Stop()
	<-ctx.Done() // Wait for graceful shutdown
	s.logger.Info("Announce scheduler gracefully stopped.")
}
