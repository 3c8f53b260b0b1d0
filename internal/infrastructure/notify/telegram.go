// Package notify delivers outgoing messages through the Telegram Bot API.
package notify

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier implements ports.Notifier over the Bot API.
type TelegramNotifier struct {
	bot *tgbotapi.BotAPI
}

// New authenticates against the Bot API with the given token.
func New(botToken string) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramNotifier{bot: bot}, nil
}

// NewWithBot wraps an already authenticated bot instance.
func NewWithBot(bot *tgbotapi.BotAPI) *TelegramNotifier {
	return &TelegramNotifier{bot: bot}
}

// SendText delivers a plain text message to the given chat id.
func (n *TelegramNotifier) SendText(_ context.Context, chatID, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", chatID, err)
	}

	if _, err := n.bot.Send(tgbotapi.NewMessage(id, text)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
