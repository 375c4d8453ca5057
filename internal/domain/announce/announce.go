// internal/domain/announce/announce.go
package announce

import "time"

// Announcement records a roster that was published to one platform
// target. Serve mode uses the (week_start, platform, channel) key to
// avoid announcing the same week twice.
type Announcement struct {
	ID              int64
	WeekStart       time.Time // anchor-aligned start of the announced week
	Platform        string    // e.g. "slack", "telegram"
	Channel         string    // destination channel or chat ID
	ReleaseArtistry []string
	FocusedWork     []string
	CreatedAt       time.Time
}
