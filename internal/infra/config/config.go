package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"rotation_notification_bot/internal/domain/chat"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	Schema string // schedule file path or inline table content

	SlackToken       string
	SlackChannel     string
	SlackGroupID     string // usergroup to keep in sync with the assignees
	SlackUserMapping chat.UserMapping

	TelegramToken       string
	TelegramChatID      int64
	TelegramUserMapping chat.UserMapping

	DatabaseURL      string // optional; announcements stay in memory when unset
	CronSpecAnnounce string
	LogLevel         string
	Environment      string
}

// SlackConfigured reports whether a Slack destination is set.
func (c *AppConfig) SlackConfigured() bool {
	return c.SlackChannel != ""
}

// TelegramConfigured reports whether a Telegram destination is set.
func (c *AppConfig) TelegramConfigured() bool {
	return c.TelegramChatID != 0
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.Schema = os.Getenv("SCHEMA")

	cfg.SlackToken = os.Getenv("SLACK_TOKEN")
	cfg.SlackChannel = os.Getenv("SLACK_CHANNEL")
	cfg.SlackGroupID = os.Getenv("SLACK_GROUP_ID")
	cfg.SlackUserMapping = loadUserMapping("SLACK_USER_MAPPING")

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if chatIDStr := os.Getenv("TELEGRAM_CHAT_ID"); chatIDStr != "" {
		chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = chatID
	}
	cfg.TelegramUserMapping = loadUserMapping("TELEGRAM_USER_MAPPING")

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	cfg.CronSpecAnnounce = os.Getenv("CRON_SPEC_ANNOUNCE")
	if cfg.CronSpecAnnounce == "" {
		cfg.CronSpecAnnounce = "0 9 * * 1" // Default: 9:00 AM every Monday
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

// loadUserMapping parses a JSON name-to-ID mapping from the named
// environment variable. A malformed mapping is not fatal: it logs a
// warning and yields an empty mapping, so mentions fall back to plain
// names.
func loadUserMapping(envVar string) chat.UserMapping {
	mapping, err := chat.ParseUserMapping(os.Getenv(envVar))
	if err != nil {
		log.Printf("WARN: Failed to parse %s: %v", envVar, err)
		return chat.UserMapping{}
	}
	return mapping
}
