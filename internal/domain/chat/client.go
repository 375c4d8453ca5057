// internal/domain/chat/client.go
package chat

import (
	"context"
	"errors"
	"time"
)

// ErrGroupSyncUnsupported is returned by platforms whose bot API cannot
// manage group membership. Callers log and continue.
var ErrGroupSyncUnsupported = errors.New("group sync is not supported on this platform")

// Roster is one week's duty assignment, ready for publishing.
type Roster struct {
	WeekOf          time.Time
	ReleaseArtistry []string
	FocusedWork     []string
}

// Client posts rosters to a chat platform and optionally keeps a named
// user group in sync with the current assignees. This decouples the
// application logic from the specific platform SDKs.
type Client interface {
	// Name identifies the platform, e.g. "slack".
	Name() string
	// Target identifies the destination channel or chat.
	Target() string
	PostRoster(ctx context.Context, roster Roster) error
	SyncGroup(ctx context.Context, members []string) error
}
