package ports

import (
	"context"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

// ClientRepository abstracts the client data backend. Two implementations
// exist: the Google Apps Script spreadsheet adapter and the MongoDB adapter.
// The active one is chosen at process start.
type ClientRepository interface {
	// FindByChatID returns the current storage order for one Telegram chat id.
	FindByChatID(ctx context.Context, chatID string) (*domain.Client, error)

	// ListClients returns every current storage order.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// HistoryByChatID returns the archived orders for one chat id, possibly empty.
	HistoryByChatID(ctx context.Context, chatID string) ([]domain.ArchiveOrder, error)

	// ListHistory returns every archived order.
	ListHistory(ctx context.Context) ([]domain.ArchiveOrder, error)

	// ListTemplates returns the admin message templates.
	ListTemplates(ctx context.Context) ([]domain.MessageTemplate, error)

	// AddClient registers a fresh signup with just a chat id and phone number.
	// Returns domain.ErrClientExists when the chat id is already present.
	AddClient(ctx context.Context, chatID, phone string) error
}
