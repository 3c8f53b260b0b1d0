package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

func TestVisibilityService_Settings(t *testing.T) {
	store := newStubSettingsStore()
	svc := NewVisibilityService(store, newStubCache(), zerolog.Nop())

	got, err := svc.Settings(context.Background())
	if err != nil {
		t.Fatalf("Settings returned error: %v", err)
	}
	if got != domain.DefaultFieldVisibility() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestVisibilityService_Update_Admin(t *testing.T) {
	store := newStubSettingsStore()
	cache := newStubCache()
	svc := NewVisibilityService(store, cache, zerolog.Nop())

	next := domain.DefaultFieldVisibility()
	next.Debt = true

	accepted, err := svc.Update(context.Background(), domain.RoleAdmin, next)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if accepted != next {
		t.Fatalf("confirmation mismatch: %+v", accepted)
	}

	// A read immediately after the write observes the new value.
	got, err := svc.Settings(context.Background())
	if err != nil {
		t.Fatalf("Settings returned error: %v", err)
	}
	if got != next {
		t.Fatalf("read-after-write mismatch: %+v", got)
	}

	if cache.clears != 1 {
		t.Fatalf("expected one cache clear, got %d", cache.clears)
	}
}

func TestVisibilityService_Update_NonAdmin(t *testing.T) {
	store := newStubSettingsStore()
	cache := newStubCache()
	svc := NewVisibilityService(store, cache, zerolog.Nop())

	next := domain.DefaultFieldVisibility()
	next.Debt = true

	if _, err := svc.Update(context.Background(), domain.RoleClient, next); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Prior settings remain untouched and no cache bust happened.
	got, _ := svc.Settings(context.Background())
	if got != domain.DefaultFieldVisibility() {
		t.Fatalf("settings changed on rejected write: %+v", got)
	}
	if store.puts != 0 {
		t.Fatalf("store written on rejected update: %d puts", store.puts)
	}
	if cache.clears != 0 {
		t.Fatalf("cache cleared on rejected update")
	}
}

func TestVisibilityService_Update_StoreFailure(t *testing.T) {
	store := newStubSettingsStore()
	store.putErr = errStoreDown
	cache := newStubCache()
	svc := NewVisibilityService(store, cache, zerolog.Nop())

	if _, err := svc.Update(context.Background(), domain.RoleAdmin, domain.FieldVisibility{}); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
	if cache.clears != 0 {
		t.Fatal("cache cleared despite failed write")
	}
}
