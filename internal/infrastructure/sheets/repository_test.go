package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

func newTestServer(t *testing.T) (*httptest.Server, *Repository) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var req addUserRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Action != "addUser" {
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Неверное действие."})
				return
			}
			if req.ChatID == "42" {
				_ = json.NewEncoder(w).Encode(map[string]string{"result": "exists"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"result": "success"})
			return
		}

		switch r.URL.Query().Get("sheet") {
		case "WebBase":
			_ = json.NewEncoder(w).Encode([]map[string]string{
				{
					"Chat ID":     "42",
					"Имя клиента": "Иван",
					"Телефон":     "+79990001122",
					"Долг":        "500",
				},
				{
					"Chat ID":     "77",
					"Имя клиента": "Пётр",
				},
			})
		case "Archive":
			_ = json.NewEncoder(w).Encode([]map[string]string{
				{"Chat ID": "42", "Имя клиента": "Иван", "Окончание": "01.03.2025"},
				{"Chat ID": "77", "Имя клиента": "Пётр"},
			})
		case "Templates":
			_ = json.NewEncoder(w).Encode([]map[string]string{
				{"Название": "Напоминание", "Текст": "Срок хранения подходит к концу"},
			})
		default:
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Sheet not found."})
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	repo := NewRepository(NewClient(srv.URL), "WebBase", "Archive", "Templates")
	return srv, repo
}

func TestRepository_FindByChatID(t *testing.T) {
	_, repo := newTestServer(t)

	client, err := repo.FindByChatID(context.Background(), "42")
	if err != nil {
		t.Fatalf("FindByChatID returned error: %v", err)
	}
	if client.Name != "Иван" || client.Debt != "500" {
		t.Fatalf("unexpected client: %+v", client)
	}
	// Columns absent from the sheet decode as empty strings.
	if client.DotCode != "" {
		t.Fatalf("expected empty dot code, got %q", client.DotCode)
	}
}

func TestRepository_FindByChatID_NotFound(t *testing.T) {
	_, repo := newTestServer(t)

	if _, err := repo.FindByChatID(context.Background(), "999"); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestRepository_HistoryByChatID(t *testing.T) {
	_, repo := newTestServer(t)

	orders, err := repo.HistoryByChatID(context.Background(), "42")
	if err != nil {
		t.Fatalf("HistoryByChatID returned error: %v", err)
	}
	if len(orders) != 1 || orders[0].EndDate != "01.03.2025" {
		t.Fatalf("unexpected history: %+v", orders)
	}
}

func TestRepository_ListTemplates(t *testing.T) {
	_, repo := newTestServer(t)

	templates, err := repo.ListTemplates(context.Background())
	if err != nil {
		t.Fatalf("ListTemplates returned error: %v", err)
	}
	if len(templates) != 1 || templates[0].Title != "Напоминание" {
		t.Fatalf("unexpected templates: %+v", templates)
	}
}

func TestRepository_AddClient(t *testing.T) {
	_, repo := newTestServer(t)

	if err := repo.AddClient(context.Background(), "100", "+79990003344"); err != nil {
		t.Fatalf("AddClient returned error: %v", err)
	}

	if err := repo.AddClient(context.Background(), "42", "+79990001122"); !errors.Is(err, domain.ErrClientExists) {
		t.Fatalf("expected ErrClientExists, got %v", err)
	}
}

func TestRepository_ScriptError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "quota exceeded"})
	}))
	t.Cleanup(srv.Close)

	repo := NewRepository(NewClient(srv.URL), "WebBase", "Archive", "Templates")
	if _, err := repo.ListClients(context.Background()); !errors.Is(err, domain.ErrBackendFailure) {
		t.Fatalf("expected ErrBackendFailure, got %v", err)
	}
}
