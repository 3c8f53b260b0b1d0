package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/koleso24/cabinet-api/internal/api/metrics"
	"github.com/koleso24/cabinet-api/internal/core/domain"
	"github.com/koleso24/cabinet-api/internal/core/ports"
)

type messengerService struct {
	notifier ports.Notifier
	repo     ports.ClientRepository
	log      zerolog.Logger
}

// NewMessengerService returns the admin-to-client messaging service.
func NewMessengerService(notifier ports.Notifier, repo ports.ClientRepository, log zerolog.Logger) ports.MessengerService {
	return &messengerService{notifier: notifier, repo: repo, log: log}
}

func (s *messengerService) Send(ctx context.Context, role, chatID, text string) error {
	if role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.notifier.SendText(ctx, chatID, text); err != nil {
		metrics.MessagesSentTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("send message to %s: %w", chatID, err)
	}

	metrics.MessagesSentTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("chat_id", chatID).Msg("message sent to client")
	return nil
}

func (s *messengerService) Templates(ctx context.Context, role string) ([]domain.MessageTemplate, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	templates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}
