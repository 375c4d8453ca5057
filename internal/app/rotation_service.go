// internal/app/rotation_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rotation_notification_bot/internal/domain/announce"
	"rotation_notification_bot/internal/domain/chat"
	"rotation_notification_bot/internal/domain/schedule"
	idb "rotation_notification_bot/internal/infra/database" // For ErrAnnouncementNotFound

	"github.com/sirupsen/logrus"
)

// AnnounceOptions controls a single announcement run.
type AnnounceOptions struct {
	// SyncGroup also reconciles each platform's named user group to the
	// current assignees. Platforms without group support are skipped.
	SyncGroup bool
	// SkipIfAnnounced consults the announcement log and skips targets
	// that already received this week's roster. Serve mode sets this;
	// explicit CLI invocations do not.
	SkipIfAnnounced bool
}

// RotationService resolves the duty roster for a date and publishes it
// to the configured chat platforms.
type RotationService struct {
	schedule schedule.Schedule
	clients  []chat.Client
	repo     announce.Repository
	logger   *logrus.Entry
}

func NewRotationService(
	sched schedule.Schedule,
	clients []chat.Client,
	repo announce.Repository,
	logger *logrus.Entry,
) *RotationService {
	return &RotationService{
		schedule: sched,
		clients:  clients,
		repo:     repo,
		logger:   logger,
	}
}

// ResolveFor returns the duty assignment in effect on target.
func (s *RotationService) ResolveFor(target time.Time) (schedule.Assignment, error) {
	return s.schedule.Resolve(target)
}

// CycleInfo describes the loaded rotation cycle.
func (s *RotationService) CycleInfo() schedule.CycleInfo {
	return s.schedule.CycleInfo()
}

// Announce resolves the roster for target and posts it to every
// configured platform, recording each successful post. All platforms
// are attempted; errors are collected and returned joined.
func (s *RotationService) Announce(ctx context.Context, target time.Time, opts AnnounceOptions) error {
	assignment, err := s.schedule.Resolve(target)
	if err != nil {
		return err
	}
	if len(s.clients) == 0 {
		return fmt.Errorf("no chat platforms configured")
	}

	weekStart := s.schedule.WeekStartFor(target)
	weekLabel := schedule.FormatDate(weekStart)

	var errs []error
	for _, client := range s.clients {
		if opts.SkipIfAnnounced {
			existing, err := s.repo.GetByWeekAndTarget(ctx, weekStart, client.Name(), client.Target())
			if err == nil {
				s.logger.Infof("Roster for week of %s already announced on %s (%s) at %s. Skipping.",
					weekLabel, client.Name(), client.Target(), existing.CreatedAt.Format(time.RFC3339))
				continue
			}
			if !errors.Is(err, idb.ErrAnnouncementNotFound) {
				errs = append(errs, fmt.Errorf("%s: check announcement log: %w", client.Name(), err))
				continue
			}
		}

		roster := chat.Roster{
			WeekOf:          weekStart,
			ReleaseArtistry: assignment.ReleaseArtistry,
			FocusedWork:     assignment.FocusedWork,
		}
		if err := client.PostRoster(ctx, roster); err != nil {
			errs = append(errs, fmt.Errorf("%s: post roster: %w", client.Name(), err))
			continue
		}
		s.logger.Infof("Roster for week of %s posted to %s (%s)", weekLabel, client.Name(), client.Target())

		if opts.SyncGroup {
			members := make([]string, 0, len(assignment.ReleaseArtistry)+len(assignment.FocusedWork))
			members = append(members, assignment.ReleaseArtistry...)
			members = append(members, assignment.FocusedWork...)
			switch err := client.SyncGroup(ctx, members); {
			case err == nil:
				s.logger.Infof("Group membership synced on %s", client.Name())
			case errors.Is(err, chat.ErrGroupSyncUnsupported):
				s.logger.Debugf("Group sync not supported on %s, skipping", client.Name())
			default:
				errs = append(errs, fmt.Errorf("%s: sync group: %w", client.Name(), err))
			}
		}

		record := &announce.Announcement{
			WeekStart:       weekStart,
			Platform:        client.Name(),
			Channel:         client.Target(),
			ReleaseArtistry: assignment.ReleaseArtistry,
			FocusedWork:     assignment.FocusedWork,
		}
		if err := s.repo.Create(ctx, record); err != nil {
			errs = append(errs, fmt.Errorf("%s: record announcement: %w", client.Name(), err))
		}
	}

	return errors.Join(errs...)
}
