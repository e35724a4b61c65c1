// Package notify delivers booking notifications to Slack.
package notify

import (
	"context"
	"log"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// ThemeSource returns a user's stored theme preference
type ThemeSource interface {
	Theme(deviceID string) string
}

var palettes = map[string]map[contract.NotifyKind]string{
	domain.ThemeLight: {
		contract.NotifySuccess: "#2eb67d",
		contract.NotifyWarning: "#ecb22e",
		contract.NotifyError:   "#e01e5a",
	},
	domain.ThemeDark: {
		contract.NotifySuccess: "#1b7a52",
		contract.NotifyWarning: "#b8860b",
		contract.NotifyError:   "#9b1239",
	},
}

var icons = map[contract.NotifyKind]string{
	contract.NotifySuccess: "✅",
	contract.NotifyWarning: "⏰",
	contract.NotifyError:   "❌",
}

type SlackNotifier struct {
	client  contract.SlackClient
	channel string
	themes  ThemeSource
}

// NewSlack posts broadcasts to channel and direct notifications to the
// recipient's DM. themes may be nil.
func NewSlack(client contract.SlackClient, channel string, themes ThemeSource) *SlackNotifier {
	return &SlackNotifier{client: client, channel: channel, themes: themes}
}

// SetThemes sets the theme source once the services exist
func (n *SlackNotifier) SetThemes(themes ThemeSource) {
	n.themes = themes
}

// Notify never fails the caller; delivery errors are logged
func (n *SlackNotifier) Notify(ctx context.Context, msg contract.Notification) {
	target := msg.Recipient
	theme := domain.ThemeLight
	if target == "" {
		target = n.channel
	} else if n.themes != nil {
		theme = n.themes.Theme(msg.Recipient)
	}
	if target == "" {
		log.Printf("No notification channel configured, dropping %q", msg.Title)
		return
	}

	_, _, err := n.client.PostMessageContext(
		ctx,
		target,
		slack.MsgOptionText(icons[msg.Kind]+" "+msg.Title, false),
		slack.MsgOptionAttachments(Attachment(msg, theme)),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		log.Printf("Failed to send notification %q to %s: %v", msg.Title, target, err)
	}
}

// Attachment renders a notification as a colored Slack attachment
func Attachment(msg contract.Notification, theme string) slack.Attachment {
	palette, ok := palettes[theme]
	if !ok {
		palette = palettes[domain.ThemeLight]
	}
	return slack.Attachment{
		Color:    palette[msg.Kind],
		Title:    msg.Title,
		Text:     msg.Message,
		Fallback: msg.Title + ": " + msg.Message,
	}
}
