package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)

	// PostEphemeral sends a message only the given user can see
	PostEphemeral(channelID, userID string, options ...slack.MsgOption) (string, error)

	// UploadFileV2Context uploads a file to a channel
	UploadFileV2Context(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
}
