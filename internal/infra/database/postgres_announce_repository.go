package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rotation_notification_bot/internal/domain/announce"

	"github.com/lib/pq" // For pq.Array and driver registration
)

// ErrAnnouncementNotFound is returned when no announcement matches the
// lookup key.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// PostgresAnnounceRepository persists announcements in the
// 'announcements' table:
//
//	id SERIAL, week_start DATE, platform TEXT, channel TEXT,
//	release_artistry TEXT[], focused_work TEXT[], created_at TIMESTAMPTZ
type PostgresAnnounceRepository struct {
	db *sql.DB
}

func NewPostgresAnnounceRepository(db *sql.DB) *PostgresAnnounceRepository {
	return &PostgresAnnounceRepository{db: db}
}

func (r *PostgresAnnounceRepository) Create(ctx context.Context, a *announce.Announcement) error {
	query := `INSERT INTO announcements (week_start, platform, channel, release_artistry, focused_work)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		dateOnly(a.WeekStart), a.Platform, a.Channel,
		pq.Array(a.ReleaseArtistry), pq.Array(a.FocusedWork),
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}
	return nil
}

func (r *PostgresAnnounceRepository) GetByWeekAndTarget(ctx context.Context, weekStart time.Time, platform, channel string) (*announce.Announcement, error) {
	query := `SELECT id, week_start, platform, channel, release_artistry, focused_work, created_at
               FROM announcements
               WHERE week_start = $1 AND platform = $2 AND channel = $3
               ORDER BY created_at DESC LIMIT 1`
	a := announce.Announcement{}
	err := r.db.QueryRowContext(ctx, query, dateOnly(weekStart), platform, channel).Scan(
		&a.ID, &a.WeekStart, &a.Platform, &a.Channel,
		pq.Array(&a.ReleaseArtistry), pq.Array(&a.FocusedWork), &a.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error getting announcement by week and target: %w", err)
	}
	return &a, nil
}

func (r *PostgresAnnounceRepository) ListRecent(ctx context.Context, limit int) ([]*announce.Announcement, error) {
	query := `SELECT id, week_start, platform, channel, release_artistry, focused_work, created_at
               FROM announcements
               ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*announce.Announcement
	for rows.Next() {
		a := announce.Announcement{}
		if err := rows.Scan(
			&a.ID, &a.WeekStart, &a.Platform, &a.Channel,
			pq.Array(&a.ReleaseArtistry), pq.Array(&a.FocusedWork), &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}
	return announcements, nil
}

// dateOnly normalizes to the date part so week_start comparisons are
// not affected by a time-of-day component.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
