package database

import (
	"context"
	"sync"
	"time"

	"rotation_notification_bot/internal/domain/announce"
)

// MemoryAnnounceRepository keeps announcements in process memory. It is
// used for one-shot CLI runs where DATABASE_URL is not configured, so
// the announce path works identically with and without a database.
type MemoryAnnounceRepository struct {
	mu     sync.Mutex
	nextID int64
	items  []*announce.Announcement
}

func NewMemoryAnnounceRepository() *MemoryAnnounceRepository {
	return &MemoryAnnounceRepository{nextID: 1}
}

func (r *MemoryAnnounceRepository) Create(_ context.Context, a *announce.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	a.CreatedAt = time.Now()

	stored := *a
	stored.WeekStart = dateOnly(a.WeekStart)
	r.items = append(r.items, &stored)
	return nil
}

func (r *MemoryAnnounceRepository) GetByWeekAndTarget(_ context.Context, weekStart time.Time, platform, channel string) (*announce.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	week := dateOnly(weekStart)
	// Newest first, matching the Postgres ORDER BY created_at DESC.
	for i := len(r.items) - 1; i >= 0; i-- {
		a := r.items[i]
		if a.WeekStart.Equal(week) && a.Platform == platform && a.Channel == channel {
			copied := *a
			return &copied, nil
		}
	}
	return nil, ErrAnnouncementNotFound
}

func (r *MemoryAnnounceRepository) ListRecent(_ context.Context, limit int) ([]*announce.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var announcements []*announce.Announcement
	for i := len(r.items) - 1; i >= 0 && len(announcements) < limit; i-- {
		copied := *r.items[i]
		announcements = append(announcements, &copied)
	}
	return announcements, nil
}
