package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

func TestMessengerService_Send(t *testing.T) {
	notifier := newStubNotifier()
	svc := NewMessengerService(notifier, newStubClientRepo(), zerolog.Nop())

	if err := svc.Send(context.Background(), domain.RoleAdmin, "42", "Ваш заказ готов"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if got := notifier.sent["42"]; len(got) != 1 || got[0] != "Ваш заказ готов" {
		t.Fatalf("unexpected delivery log: %+v", notifier.sent)
	}
}

func TestMessengerService_Send_NonAdmin(t *testing.T) {
	notifier := newStubNotifier()
	svc := NewMessengerService(notifier, newStubClientRepo(), zerolog.Nop())

	if err := svc.Send(context.Background(), domain.RoleClient, "42", "hi"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("nothing should have been sent: %+v", notifier.sent)
	}
}

func TestMessengerService_Send_NotifierFailure(t *testing.T) {
	notifier := newStubNotifier()
	notifier.sendErr = errors.New("telegram api down")
	svc := NewMessengerService(notifier, newStubClientRepo(), zerolog.Nop())

	if err := svc.Send(context.Background(), domain.RoleAdmin, "42", "hi"); err == nil {
		t.Fatal("expected delivery error")
	}
}

func TestMessengerService_Templates(t *testing.T) {
	repo := newStubClientRepo()
	repo.templates = []domain.MessageTemplate{
		{Title: "Напоминание", Text: "Срок хранения подходит к концу"},
	}
	svc := NewMessengerService(newStubNotifier(), repo, zerolog.Nop())

	if _, err := svc.Templates(context.Background(), domain.RoleClient); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, err := svc.Templates(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Templates returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Напоминание" {
		t.Fatalf("unexpected templates: %+v", got)
	}
}
