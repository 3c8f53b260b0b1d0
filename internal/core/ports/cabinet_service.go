package ports

import (
	"context"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

// CabinetService serves client-facing cabinet data, projected per role and
// the current visibility settings.
type CabinetService interface {
	// CurrentOrder returns the requester's own storage order.
	CurrentOrder(ctx context.Context, userID, role string) (domain.Projection, error)

	// History returns the requester's archived orders, oldest first as the
	// backend delivers them.
	History(ctx context.Context, userID, role string) ([]domain.Projection, error)

	// AllClients returns every client record. Admin only.
	AllClients(ctx context.Context, role string) ([]domain.Projection, error)

	// AllHistory returns every archived order. Admin only.
	AllHistory(ctx context.Context, role string) ([]domain.Projection, error)

	// Register adds a new signup with a chat id and phone number.
	Register(ctx context.Context, chatID, phone string) error
}

// VisibilityService is the read/write gate over the field-visibility settings.
type VisibilityService interface {
	// Settings returns the current snapshot. Open to any caller.
	Settings(ctx context.Context) (domain.FieldVisibility, error)

	// Update atomically replaces the snapshot. Admin only; returns the
	// accepted settings as confirmation and busts all cached projections.
	Update(ctx context.Context, role string, settings domain.FieldVisibility) (domain.FieldVisibility, error)
}

// MessengerService lets the admin contact clients through the bot.
type MessengerService interface {
	Send(ctx context.Context, role, chatID, text string) error
	Templates(ctx context.Context, role string) ([]domain.MessageTemplate, error)
}
