package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

type stubVisibilityService struct {
	settings domain.FieldVisibility
	updated  int
}

func newStubVisibilityService() *stubVisibilityService {
	return &stubVisibilityService{settings: domain.DefaultFieldVisibility()}
}

func (s *stubVisibilityService) Settings(_ context.Context) (domain.FieldVisibility, error) {
	return s.settings, nil
}

func (s *stubVisibilityService) Update(_ context.Context, role string, settings domain.FieldVisibility) (domain.FieldVisibility, error) {
	if role != domain.RoleAdmin {
		return domain.FieldVisibility{}, domain.ErrForbidden
	}
	s.settings = settings
	s.updated++
	return s.settings, nil
}

func fullVisibilityBody(t *testing.T, overrides map[string]bool) string {
	t.Helper()
	payload := make(map[string]bool, len(domain.FieldNames))
	for _, name := range domain.FieldNames {
		payload[string(name)] = true
	}
	for k, v := range overrides {
		payload[k] = v
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return string(raw)
}

func newUpdateContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/field-visibility", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "96609347")
	c.Set("role", domain.RoleAdmin)
	return c, rec
}

func TestVisibilityHandler_Get(t *testing.T) {
	svc := newStubVisibilityService()
	h := NewVisibilityHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/field-visibility", nil)
	rec := httptest.NewRecorder()

	if err := h.Get(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got domain.FieldVisibility
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got != domain.DefaultFieldVisibility() {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestVisibilityHandler_Update(t *testing.T) {
	svc := newStubVisibilityService()
	h := NewVisibilityHandler(svc)

	c, rec := newUpdateContext(fullVisibilityBody(t, map[string]bool{"debt": false}))
	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updated != 1 {
		t.Fatalf("expected exactly one update, got %d", svc.updated)
	}
	if svc.settings.Debt || !svc.settings.Name {
		t.Fatalf("settings not applied: %+v", svc.settings)
	}

	// The confirmation echoes the accepted settings.
	var got domain.FieldVisibility
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got != svc.settings {
		t.Fatalf("confirmation mismatch: %+v vs %+v", got, svc.settings)
	}
}

func TestVisibilityHandler_Update_MissingKey(t *testing.T) {
	svc := newStubVisibilityService()
	h := NewVisibilityHandler(svc)

	payload := make(map[string]bool)
	for _, name := range domain.FieldNames {
		if name == domain.FieldDotCode {
			continue
		}
		payload[string(name)] = true
	}
	raw, _ := json.Marshal(payload)

	c, _ := newUpdateContext(string(raw))
	err := h.Update(c)

	var httpErr *echo.HTTPError
	if err == nil || !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if svc.updated != 0 {
		t.Fatal("incomplete payload must not reach the service")
	}
}

func TestVisibilityHandler_Update_UnknownKey(t *testing.T) {
	svc := newStubVisibilityService()
	h := NewVisibilityHandler(svc)

	body := fullVisibilityBody(t, nil)
	body = strings.TrimSuffix(body, "}") + `,"secretField":true}`

	c, _ := newUpdateContext(body)
	err := h.Update(c)

	var httpErr *echo.HTTPError
	if err == nil || !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if svc.updated != 0 {
		t.Fatal("payload with unknown key must not reach the service")
	}
	if svc.settings != domain.DefaultFieldVisibility() {
		t.Fatalf("settings changed on rejected payload: %+v", svc.settings)
	}
}

func TestVisibilityHandler_Update_NonBooleanValue(t *testing.T) {
	svc := newStubVisibilityService()
	h := NewVisibilityHandler(svc)

	body := fullVisibilityBody(t, nil)
	body = strings.Replace(body, `"debt":true`, `"debt":"yes"`, 1)

	c, _ := newUpdateContext(body)
	err := h.Update(c)

	var httpErr *echo.HTTPError
	if err == nil || !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestVisibilityHandler_Update_NonAdmin(t *testing.T) {
	svc := newStubVisibilityService()
	h := NewVisibilityHandler(svc)

	c, _ := newUpdateContext(fullVisibilityBody(t, nil))
	c.Set("role", domain.RoleClient)

	if err := h.Update(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden passthrough, got %v", err)
	}
}
