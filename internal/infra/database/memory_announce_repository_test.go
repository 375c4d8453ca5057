package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"rotation_notification_bot/internal/domain/announce"
)

func week(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryRepositoryCreateAndGet(t *testing.T) {
	t.Parallel()
	repo := NewMemoryAnnounceRepository()
	ctx := context.Background()

	a := &announce.Announcement{
		WeekStart:       week(2026, time.February, 9),
		Platform:        "slack",
		Channel:         "#art-release",
		ReleaseArtistry: []string{"Fabio", "Michael", "Luis"},
		FocusedWork:     []string{"Daniele", "Joep"},
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("Create should assign an ID")
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("Create should set CreatedAt")
	}

	got, err := repo.GetByWeekAndTarget(ctx, week(2026, time.February, 9), "slack", "#art-release")
	if err != nil {
		t.Fatalf("GetByWeekAndTarget error: %v", err)
	}
	if got.ID != a.ID {
		t.Fatalf("ID = %d, want %d", got.ID, a.ID)
	}
}

func TestMemoryRepositoryIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()
	repo := NewMemoryAnnounceRepository()
	ctx := context.Background()

	a := &announce.Announcement{
		WeekStart: time.Date(2026, time.February, 9, 14, 0, 0, 0, time.UTC),
		Platform:  "slack",
		Channel:   "#art-release",
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := repo.GetByWeekAndTarget(ctx, week(2026, time.February, 9), "slack", "#art-release"); err != nil {
		t.Fatalf("lookup with midnight date failed: %v", err)
	}
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	t.Parallel()
	repo := NewMemoryAnnounceRepository()
	ctx := context.Background()

	_, err := repo.GetByWeekAndTarget(ctx, week(2026, time.February, 9), "slack", "#art-release")
	if !errors.Is(err, ErrAnnouncementNotFound) {
		t.Fatalf("err = %v, want ErrAnnouncementNotFound", err)
	}

	a := &announce.Announcement{WeekStart: week(2026, time.February, 9), Platform: "slack", Channel: "#art-release"}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := repo.GetByWeekAndTarget(ctx, week(2026, time.February, 9), "telegram", "12345"); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Fatalf("err = %v, want ErrAnnouncementNotFound for other platform", err)
	}
}

func TestMemoryRepositoryListRecent(t *testing.T) {
	t.Parallel()
	repo := NewMemoryAnnounceRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		a := &announce.Announcement{
			WeekStart: week(2026, time.February, 9).AddDate(0, 0, 7*i),
			Platform:  "slack",
			Channel:   "#art-release",
		}
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	got, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if !got[0].WeekStart.After(got[1].WeekStart) {
		t.Fatalf("expected newest first, got %v then %v", got[0].WeekStart, got[1].WeekStart)
	}
}
