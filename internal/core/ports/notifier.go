package ports

import "context"

// Notifier delivers a text message to a Telegram chat.
type Notifier interface {
	SendText(ctx context.Context, chatID, text string) error
}
