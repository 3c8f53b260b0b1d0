package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/koleso24/cabinet-api/internal/api/metrics"
	"github.com/koleso24/cabinet-api/internal/core/domain"
	"github.com/koleso24/cabinet-api/internal/core/ports"
)

type cabinetService struct {
	repo     ports.ClientRepository
	settings ports.SettingsStore
	cache    ports.ProjectionCache
	log      zerolog.Logger
}

// NewCabinetService returns the CabinetService implementation backed by the
// active client repository. Projections of the requester's own data are
// cached per user until the next visibility update.
func NewCabinetService(repo ports.ClientRepository, settings ports.SettingsStore, cache ports.ProjectionCache, log zerolog.Logger) ports.CabinetService {
	return &cabinetService{repo: repo, settings: settings, cache: cache, log: log}
}

func (s *cabinetService) CurrentOrder(ctx context.Context, userID, role string) (domain.Projection, error) {
	cacheKey := fmt.Sprintf("client:%s:%s", role, userID)

	var cached domain.Projection
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		s.log.Warn().Err(err).Str("key", cacheKey).Msg("projection cache read failed")
	} else if hit {
		metrics.ProjectionCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.ProjectionCacheTotal.WithLabelValues("miss").Inc()

	client, err := s.repo.FindByChatID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("current order for %s: %w", userID, err)
	}

	vis, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("current order: read settings: %w", err)
	}

	projection := domain.ProjectClient(*client, vis, role)
	if err := s.cache.Set(ctx, cacheKey, projection); err != nil {
		s.log.Warn().Err(err).Str("key", cacheKey).Msg("projection cache write failed")
	}
	return projection, nil
}

func (s *cabinetService) History(ctx context.Context, userID, role string) ([]domain.Projection, error) {
	cacheKey := fmt.Sprintf("archive:%s:%s", role, userID)

	var cached []domain.Projection
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		s.log.Warn().Err(err).Str("key", cacheKey).Msg("projection cache read failed")
	} else if hit {
		metrics.ProjectionCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.ProjectionCacheTotal.WithLabelValues("miss").Inc()

	orders, err := s.repo.HistoryByChatID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history for %s: %w", userID, err)
	}

	vis, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("history: read settings: %w", err)
	}

	projections := make([]domain.Projection, 0, len(orders))
	for _, o := range orders {
		projections = append(projections, domain.ProjectArchive(o, vis, role))
	}

	if err := s.cache.Set(ctx, cacheKey, projections); err != nil {
		s.log.Warn().Err(err).Str("key", cacheKey).Msg("projection cache write failed")
	}
	return projections, nil
}

func (s *cabinetService) AllClients(ctx context.Context, role string) ([]domain.Projection, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	vis, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: read settings: %w", err)
	}

	projections := make([]domain.Projection, 0, len(clients))
	for _, c := range clients {
		projections = append(projections, domain.ProjectClient(c, vis, role))
	}
	return projections, nil
}

func (s *cabinetService) AllHistory(ctx context.Context, role string) ([]domain.Projection, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	orders, err := s.repo.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	vis, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: read settings: %w", err)
	}

	projections := make([]domain.Projection, 0, len(orders))
	for _, o := range orders {
		projections = append(projections, domain.ProjectArchive(o, vis, role))
	}
	return projections, nil
}

func (s *cabinetService) Register(ctx context.Context, chatID, phone string) error {
	if err := s.repo.AddClient(ctx, chatID, phone); err != nil {
		return fmt.Errorf("register %s: %w", chatID, err)
	}

	s.log.Info().Str("chat_id", chatID).Msg("new client registered")
	return nil
}
