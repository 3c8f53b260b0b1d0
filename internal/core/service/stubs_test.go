package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

type stubSettingsStore struct {
	settings domain.FieldVisibility
	putErr   error
	puts     int
}

func newStubSettingsStore() *stubSettingsStore {
	return &stubSettingsStore{settings: domain.DefaultFieldVisibility()}
}

func (s *stubSettingsStore) Get(_ context.Context) (domain.FieldVisibility, error) {
	return s.settings, nil
}

func (s *stubSettingsStore) Put(_ context.Context, settings domain.FieldVisibility) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.settings = settings
	s.puts++
	return nil
}

type stubCache struct {
	entries map[string][]byte
	clears  int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *stubCache) Clear(_ context.Context) error {
	c.entries = make(map[string][]byte)
	c.clears++
	return nil
}

type stubClientRepo struct {
	clients   map[string]domain.Client
	archive   map[string][]domain.ArchiveOrder
	templates []domain.MessageTemplate
	added     map[string]string
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{
		clients: make(map[string]domain.Client),
		archive: make(map[string][]domain.ArchiveOrder),
		added:   make(map[string]string),
	}
}

func (r *stubClientRepo) FindByChatID(_ context.Context, chatID string) (*domain.Client, error) {
	c, ok := r.clients[chatID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return &c, nil
}

func (r *stubClientRepo) ListClients(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubClientRepo) HistoryByChatID(_ context.Context, chatID string) ([]domain.ArchiveOrder, error) {
	return r.archive[chatID], nil
}

func (r *stubClientRepo) ListHistory(_ context.Context) ([]domain.ArchiveOrder, error) {
	var out []domain.ArchiveOrder
	for _, orders := range r.archive {
		out = append(out, orders...)
	}
	return out, nil
}

func (r *stubClientRepo) ListTemplates(_ context.Context) ([]domain.MessageTemplate, error) {
	return r.templates, nil
}

func (r *stubClientRepo) AddClient(_ context.Context, chatID, phone string) error {
	if _, ok := r.clients[chatID]; ok {
		return domain.ErrClientExists
	}
	if _, ok := r.added[chatID]; ok {
		return domain.ErrClientExists
	}
	r.added[chatID] = phone
	return nil
}

type stubNotifier struct {
	sent    map[string][]string
	sendErr error
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{sent: make(map[string][]string)}
}

func (n *stubNotifier) SendText(_ context.Context, chatID, text string) error {
	if n.sendErr != nil {
		return n.sendErr
	}
	n.sent[chatID] = append(n.sent[chatID], text)
	return nil
}

var errStoreDown = errors.New("store down")
