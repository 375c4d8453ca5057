// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"fmt"
	"strings"

	"rotation_notification_bot/internal/domain/chat"
	"rotation_notification_bot/internal/domain/schedule"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Announcer implements chat.Client using the gopkg.in/telebot.v3
// library, posting the weekly roster to a single chat. In dry-run mode
// bot may be nil; messages are only logged.
type Announcer struct {
	bot     *telebot.Bot
	chatID  int64
	mapping chat.UserMapping
	dryRun  bool
	logger  *logrus.Entry
}

func NewAnnouncer(bot *telebot.Bot, chatID int64, mapping chat.UserMapping, dryRun bool, logger *logrus.Entry) *Announcer {
	return &Announcer{
		bot:     bot,
		chatID:  chatID,
		mapping: mapping,
		dryRun:  dryRun,
		logger:  logger,
	}
}

func (a *Announcer) Name() string { return "telegram" }

func (a *Announcer) Target() string { return fmt.Sprintf("%d", a.chatID) }

// formatMentions converts display names to Telegram text-mention links
// when a numeric user ID is mapped, plain names otherwise.
func (a *Announcer) formatMentions(people []string) string {
	formatted := make([]string, 0, len(people))
	for _, name := range people {
		if userID, ok := a.mapping[name]; ok {
			formatted = append(formatted, fmt.Sprintf("[%s](tg://user?id=%s)", name, userID))
		} else {
			a.logger.Warnf("No Telegram user ID found for '%s', using plain name", name)
			formatted = append(formatted, name)
		}
	}
	return strings.Join(formatted, ", ")
}

func (a *Announcer) message(roster chat.Roster) string {
	return fmt.Sprintf(
		"*Weekly Schedule for week of %s*\n\n"+
			"*Release Artistry:* %s\n"+
			"*Focused Work:* %s",
		schedule.FormatDate(roster.WeekOf),
		a.formatMentions(roster.ReleaseArtistry),
		a.formatMentions(roster.FocusedWork),
	)
}

// PostRoster sends the weekly schedule message to the configured chat.
func (a *Announcer) PostRoster(_ context.Context, roster chat.Roster) error {
	msg := a.message(roster)

	if a.dryRun {
		a.logger.Infof("[DRY RUN] Would send to chat %d: %s", a.chatID, msg)
		return nil
	}

	recipient := &telebot.Chat{ID: a.chatID}
	if _, err := a.bot.Send(recipient, msg, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown}); err != nil {
		return fmt.Errorf("failed to send Telegram message: %w", err)
	}
	a.logger.Infof("Telegram message sent to chat %d", a.chatID)
	return nil
}

// SyncGroup is not possible through the Bot API: bots cannot add
// members to a chat. Callers treat this as a skip, not a failure.
func (a *Announcer) SyncGroup(context.Context, []string) error {
	return chat.ErrGroupSyncUnsupported
}
