package cli

import (
	"fmt"

	"rotation_notification_bot/internal/domain/announce"
	"rotation_notification_bot/internal/domain/chat"
	"rotation_notification_bot/internal/infra/config"
	"rotation_notification_bot/internal/infra/database"
	"rotation_notification_bot/internal/infra/logger"
	islack "rotation_notification_bot/internal/infra/slack"
	itelegram "rotation_notification_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

// buildClients constructs a chat client for every configured platform.
// A platform is configured when its destination is set; tokens are only
// required outside dry-run mode.
func buildClients(cfg *config.AppConfig, dryRun bool) ([]chat.Client, error) {
	var clients []chat.Client

	if cfg.SlackConfigured() {
		if cfg.SlackToken == "" && !dryRun {
			return nil, fmt.Errorf("SLACK_TOKEN environment variable is not set")
		}
		clients = append(clients, islack.NewClient(
			cfg.SlackToken, cfg.SlackChannel, cfg.SlackGroupID,
			cfg.SlackUserMapping, dryRun, logger.Component("slack"),
		))
	}

	if cfg.TelegramConfigured() {
		var bot *telebot.Bot
		if !dryRun {
			if cfg.TelegramToken == "" {
				return nil, fmt.Errorf("TELEGRAM_TOKEN environment variable is not set")
			}
			b, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
			if err != nil {
				return nil, fmt.Errorf("could not create Telegram bot: %w", err)
			}
			bot = b
		}
		clients = append(clients, itelegram.NewAnnouncer(
			bot, cfg.TelegramChatID, cfg.TelegramUserMapping, dryRun, logger.Component("telegram"),
		))
	}

	if len(clients) == 0 {
		return nil, fmt.Errorf("no chat platform configured; set SLACK_CHANNEL or TELEGRAM_CHAT_ID")
	}
	return clients, nil
}

// buildAnnounceRepo returns the announcement log backed by Postgres
// when DATABASE_URL is set, in-memory otherwise. The returned closer is
// always safe to call.
func buildAnnounceRepo(cfg *config.AppConfig) (announce.Repository, func(), error) {
	if cfg.DatabaseURL == "" {
		return database.NewMemoryAnnounceRepository(), func() {}, nil
	}
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return database.NewPostgresAnnounceRepository(db), func() { db.Close() }, nil
}
