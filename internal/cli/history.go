package cli

import (
	"encoding/json"

	"rotation_notification_bot/internal/domain/schedule"
	"rotation_notification_bot/internal/infra/config"

	"github.com/spf13/cobra"
)

// historyEntry is the JSON view of one recorded announcement.
type historyEntry struct {
	WeekStart       string   `json:"week_start"`
	Platform        string   `json:"platform"`
	Channel         string   `json:"channel"`
	ReleaseArtistry []string `json:"release_artistry"`
	FocusedWork     []string `json:"focused_work"`
	AnnouncedAt     string   `json:"announced_at"`
}

func newHistoryCmd() *cobra.Command {
	var limit int
	var pretty bool

	c := &cobra.Command{
		Use:   "history",
		Short: "Print recent announcements from the announcement log",
		Long: `history lists the most recent recorded announcements, newest first.
Without DATABASE_URL the log is in-memory and one-shot runs leave no
history; this command is mainly useful against the Postgres-backed log
that serve mode writes to.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			repo, closeRepo, err := buildAnnounceRepo(cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			announcements, err := repo.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			entries := make([]historyEntry, 0, len(announcements))
			for _, a := range announcements {
				entries = append(entries, historyEntry{
					WeekStart:       schedule.FormatDate(a.WeekStart),
					Platform:        a.Platform,
					Channel:         a.Channel,
					ReleaseArtistry: a.ReleaseArtistry,
					FocusedWork:     a.FocusedWork,
					AnnouncedAt:     a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(entries)
		},
	}

	c.Flags().IntVar(&limit, "limit", 10, "maximum number of announcements to list")
	c.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the JSON output")
	return c
}
