package slack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/diegoclair/class-schedule-bot/internal/domain"
	"github.com/diegoclair/class-schedule-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

var errDestroyed = errors.New("slack session destroyed")

// authErrors are the Slack API error codes meaning the token was rejected
var authErrors = map[string]bool{
	"invalid_auth":     true,
	"not_authed":       true,
	"account_inactive": true,
	"token_revoked":    true,
	"token_expired":    true,
}

// Transport delivers notifications to a Slack channel. The recipient passed
// to SendMessage is the channel ID and is used as is.
type Transport struct {
	client contract.SlackClient
	logger *slog.Logger

	mu        sync.RWMutex
	destroyed bool
	// bumped by Destroy so an in-flight Initialize can tell it was torn down
	generation uint64
}

func NewTransport(client contract.SlackClient, logger *slog.Logger) *Transport {
	return &Transport{
		client: client,
		logger: logger,
	}
}

// Initialize validates the bot token against the Slack API. If Destroy runs
// while the check is in flight the session stays closed.
func (t *Transport) Initialize(ctx context.Context) error {
	t.mu.RLock()
	generation := t.generation
	t.mu.RUnlock()

	resp, err := t.client.AuthTestContext(ctx)
	if err != nil {
		var slackErr slack.SlackErrorResponse
		if errors.As(err, &slackErr) && authErrors[slackErr.Err] {
			return fmt.Errorf("%w: %s", domain.ErrAuthFailure, slackErr.Err)
		}
		return fmt.Errorf("failed to initialize slack session: %w", err)
	}

	t.mu.Lock()
	if t.generation != generation {
		t.mu.Unlock()
		return errDestroyed
	}
	t.destroyed = false
	t.mu.Unlock()

	t.logger.Info("Slack session established", "team", resp.Team, "bot_user", resp.UserID)
	return nil
}

// SendMessage posts text to the recipient channel. Safe for concurrent use.
func (t *Transport) SendMessage(ctx context.Context, recipient, text string) error {
	t.mu.RLock()
	destroyed := t.destroyed
	t.mu.RUnlock()
	if destroyed {
		return errDestroyed
	}

	_, _, err := t.client.PostMessageContext(ctx,
		recipient,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	t.logger.Debug("Message delivered", "channel", recipient)
	return nil
}

// Destroy ends the session; later sends fail
func (t *Transport) Destroy() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.destroyed = true
	t.generation++
	return nil
}
