package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the subset of the Slack API the bot uses
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// AuthTestContext validates the bot token
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)

	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
