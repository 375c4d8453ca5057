// internal/domain/announce/repository.go
package announce

import (
	"context"
	"time"
)

// Repository defines the operations for persisting and retrieving
// Announcement records.
type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	// GetByWeekAndTarget returns the most recent announcement for the
	// given week and destination, or ErrAnnouncementNotFound from the
	// implementing package.
	GetByWeekAndTarget(ctx context.Context, weekStart time.Time, platform, channel string) (*Announcement, error)
	ListRecent(ctx context.Context, limit int) ([]*Announcement, error)
}
