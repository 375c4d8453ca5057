// internal/infra/slack/client.go
package slack

import (
	"context"
	"fmt"
	"strings"

	"rotation_notification_bot/internal/domain/chat"
	"rotation_notification_bot/internal/domain/schedule"

	"github.com/sirupsen/logrus"
	slackapi "github.com/slack-go/slack"
)

// Client implements chat.Client against the Slack Web API. In dry-run
// mode no API client is created and messages are only logged.
type Client struct {
	api     *slackapi.Client
	channel string
	groupID string
	mapping chat.UserMapping
	dryRun  bool
	logger  *logrus.Entry
}

func NewClient(token, channel, groupID string, mapping chat.UserMapping, dryRun bool, logger *logrus.Entry) *Client {
	c := &Client{
		channel: channel,
		groupID: groupID,
		mapping: mapping,
		dryRun:  dryRun,
		logger:  logger,
	}
	if !dryRun {
		c.api = slackapi.New(token)
	}
	return c
}

func (c *Client) Name() string { return "slack" }

func (c *Client) Target() string { return c.channel }

// formatMentions converts display names to Slack mention syntax,
// falling back to a plain @name when no user ID is mapped.
func (c *Client) formatMentions(people []string) string {
	formatted := make([]string, 0, len(people))
	for _, name := range people {
		if userID, ok := c.mapping[name]; ok {
			formatted = append(formatted, fmt.Sprintf("<@%s>", userID))
		} else {
			c.logger.Warnf("No Slack user ID found for '%s', using @mention fallback", name)
			formatted = append(formatted, "@"+name)
		}
	}
	return strings.Join(formatted, ", ")
}

func (c *Client) message(roster chat.Roster) string {
	return fmt.Sprintf(
		":calendar: *Weekly Schedule for week of %s*\n\n"+
			":hammer_and_wrench: *Release Artistry:* %s\n"+
			":dart: *Focused Work:* %s",
		schedule.FormatDate(roster.WeekOf),
		c.formatMentions(roster.ReleaseArtistry),
		c.formatMentions(roster.FocusedWork),
	)
}

// PostRoster sends the weekly schedule message to the configured channel.
func (c *Client) PostRoster(ctx context.Context, roster chat.Roster) error {
	msg := c.message(roster)

	if c.dryRun {
		c.logger.Infof("[DRY RUN] Would send to %s: %s", c.channel, msg)
		return nil
	}

	_, ts, err := c.api.PostMessageContext(ctx, c.channel,
		slackapi.MsgOptionText(msg, false),
		slackapi.MsgOptionUsername("schedule-bot"),
		slackapi.MsgOptionIconEmoji(":calendar:"),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	c.logger.Infof("Slack message sent successfully: %s", ts)
	return nil
}

// SyncGroup replaces the configured usergroup's membership with the
// Slack user IDs mapped from the given names. Unmapped names are logged
// and skipped; an empty resolved set is an error since the API rejects
// empty usergroups.
func (c *Client) SyncGroup(ctx context.Context, members []string) error {
	if c.groupID == "" {
		return fmt.Errorf("SLACK_GROUP_ID is not set")
	}

	seen := make(map[string]bool, len(members))
	userIDs := make([]string, 0, len(members))
	for _, name := range members {
		userID, ok := c.mapping[name]
		if !ok {
			c.logger.Warnf("No Slack user ID found for '%s', excluding from group sync", name)
			continue
		}
		if seen[userID] {
			continue
		}
		seen[userID] = true
		userIDs = append(userIDs, userID)
	}
	if len(userIDs) == 0 {
		return fmt.Errorf("no mapped Slack user IDs to sync into group %s", c.groupID)
	}

	if c.dryRun {
		c.logger.Infof("[DRY RUN] Would sync group %s to members: %s", c.groupID, strings.Join(userIDs, ", "))
		return nil
	}

	if _, err := c.api.UpdateUserGroupMembersContext(ctx, c.groupID, strings.Join(userIDs, ",")); err != nil {
		return fmt.Errorf("failed to update Slack usergroup %s: %w", c.groupID, err)
	}
	c.logger.Infof("Slack usergroup %s synced to %d members", c.groupID, len(userIDs))
	return nil
}
