package notify

import (
	"context"
	"errors"
)

var errNotConfigured = errors.New("telegram bot token not configured")

// Disabled is the Notifier used when no bot token is configured: every send
// fails instead of silently dropping the message.
type Disabled struct{}

func (Disabled) SendText(_ context.Context, _, _ string) error {
	return errNotConfigured
}
