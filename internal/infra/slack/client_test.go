package slack

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"rotation_notification_bot/internal/domain/chat"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func testRoster() chat.Roster {
	return chat.Roster{
		WeekOf:          time.Date(2026, time.February, 9, 0, 0, 0, 0, time.UTC),
		ReleaseArtistry: []string{"Fabio", "Michael", "Luis"},
		FocusedWork:     []string{"Daniele", "Joep"},
	}
}

func TestMessageFormat(t *testing.T) {
	t.Parallel()
	mapping := chat.UserMapping{
		"Fabio":   "U11111111",
		"Michael": "U22222222",
		"Daniele": "U33333333",
	}
	c := NewClient("", "#art-release", "", mapping, true, testLogger())

	msg := c.message(testRoster())

	if !strings.Contains(msg, "Weekly Schedule for week of Feb 9, 2026") {
		t.Fatalf("missing week header: %q", msg)
	}
	if !strings.Contains(msg, "*Release Artistry:* <@U11111111>, <@U22222222>, @Luis") {
		t.Fatalf("unexpected release artistry line: %q", msg)
	}
	if !strings.Contains(msg, "*Focused Work:* <@U33333333>, @Joep") {
		t.Fatalf("unexpected focused work line: %q", msg)
	}
}

func TestPostRosterDryRun(t *testing.T) {
	t.Parallel()
	// Dry-run clients have no API handle; posting must not touch it.
	c := NewClient("", "#art-release", "", chat.UserMapping{}, true, testLogger())
	if err := c.PostRoster(context.Background(), testRoster()); err != nil {
		t.Fatalf("PostRoster dry-run error: %v", err)
	}
}

func TestSyncGroupRequiresGroupID(t *testing.T) {
	t.Parallel()
	c := NewClient("", "#art-release", "", chat.UserMapping{"Fabio": "U1"}, true, testLogger())
	if err := c.SyncGroup(context.Background(), []string{"Fabio"}); err == nil {
		t.Fatal("expected error when SLACK_GROUP_ID is unset")
	}
}

func TestSyncGroupRequiresMappedMembers(t *testing.T) {
	t.Parallel()
	c := NewClient("", "#art-release", "S123", chat.UserMapping{}, true, testLogger())
	if err := c.SyncGroup(context.Background(), []string{"Fabio", "Joep"}); err == nil {
		t.Fatal("expected error when no member has a mapped user ID")
	}
}

func TestSyncGroupDryRunDeduplicates(t *testing.T) {
	t.Parallel()
	// Same ID mapped twice must not error and must not call the API.
	mapping := chat.UserMapping{"Fabio": "U1", "Fabio Jr": "U1", "Joep": "U2"}
	c := NewClient("", "#art-release", "S123", mapping, true, testLogger())
	if err := c.SyncGroup(context.Background(), []string{"Fabio", "Fabio Jr", "Joep"}); err != nil {
		t.Fatalf("SyncGroup dry-run error: %v", err)
	}
}
