package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/koleso24/cabinet-api/internal/api/metrics"
	"github.com/koleso24/cabinet-api/internal/core/domain"
	"github.com/koleso24/cabinet-api/internal/core/ports"
)

// visibilityService is the gate over the field-visibility settings: open
// reads, admin-only whole-object writes, cache bust on every change.
type visibilityService struct {
	store ports.SettingsStore
	cache ports.ProjectionCache
	log   zerolog.Logger
}

func NewVisibilityService(store ports.SettingsStore, cache ports.ProjectionCache, log zerolog.Logger) ports.VisibilityService {
	return &visibilityService{store: store, cache: cache, log: log}
}

func (s *visibilityService) Settings(ctx context.Context) (domain.FieldVisibility, error) {
	settings, err := s.store.Get(ctx)
	if err != nil {
		return domain.FieldVisibility{}, fmt.Errorf("read visibility settings: %w", err)
	}
	return settings, nil
}

func (s *visibilityService) Update(ctx context.Context, role string, settings domain.FieldVisibility) (domain.FieldVisibility, error) {
	if role != domain.RoleAdmin {
		metrics.VisibilityUpdatesTotal.WithLabelValues("forbidden").Inc()
		return domain.FieldVisibility{}, domain.ErrForbidden
	}

	if err := s.store.Put(ctx, settings); err != nil {
		metrics.VisibilityUpdatesTotal.WithLabelValues("error").Inc()
		return domain.FieldVisibility{}, fmt.Errorf("write visibility settings: %w", err)
	}

	// Every cached projection was computed under the old settings.
	if err := s.cache.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("projection cache clear failed after visibility update")
	}

	metrics.VisibilityUpdatesTotal.WithLabelValues("ok").Inc()
	s.log.Info().Msg("field visibility settings replaced")

	return settings, nil
}
