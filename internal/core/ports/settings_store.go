package ports

import (
	"context"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

// SettingsStore holds the single field-visibility snapshot. Get hands out a
// copy; Put replaces the snapshot wholesale (last writer wins).
type SettingsStore interface {
	Get(ctx context.Context) (domain.FieldVisibility, error)
	Put(ctx context.Context, settings domain.FieldVisibility) error
}
