package domain

import "testing"

func TestProjectClient_HiddenFieldOmittedForClient(t *testing.T) {
	vis := DefaultFieldVisibility()
	vis.Name = true
	vis.Debt = false

	record := Client{ChatID: "42", Name: "Ivan", Debt: "500"}

	got := ProjectClient(record, vis, RoleClient)
	if got[FieldClientName] != "Ivan" {
		t.Fatalf("expected name in client projection, got %+v", got)
	}
	if _, ok := got[FieldDebt]; ok {
		t.Fatalf("hidden debt leaked to client: %+v", got)
	}

	admin := ProjectClient(record, vis, RoleAdmin)
	if admin[FieldClientName] != "Ivan" || admin[FieldDebt] != "500" {
		t.Fatalf("admin must see both fields: %+v", admin)
	}
}

func TestProjectClient_EmptyValuesNeverRender(t *testing.T) {
	vis := DefaultFieldVisibility()
	vis.Cell = true

	record := Client{ChatID: "42", Name: "Ivan"} // cell is visible but empty

	for _, role := range []string{RoleClient, RoleAdmin} {
		got := ProjectClient(record, vis, role)
		if _, ok := got[FieldCell]; ok {
			t.Fatalf("role %s: empty cell must not render: %+v", role, got)
		}
	}
}

func TestProjectClient_AllHidden(t *testing.T) {
	vis := FieldVisibility{} // every field off

	record := Client{
		ChatID: "42",
		Name:   "Ivan",
		Phone:  "+79990001122",
		Debt:   "500",
	}

	if got := ProjectClient(record, vis, RoleClient); len(got) != 0 {
		t.Fatalf("expected empty projection, got %+v", got)
	}
	if got := ProjectClient(record, vis, RoleAdmin); len(got) != 3 {
		t.Fatalf("visibility must not restrict admins: %+v", got)
	}
}

func TestProjectArchive(t *testing.T) {
	vis := DefaultFieldVisibility()
	order := ArchiveOrder{ChatID: "42", Name: "Ivan", Debt: "100"}

	got := ProjectArchive(order, vis, RoleClient)
	if got[FieldClientName] != "Ivan" {
		t.Fatalf("unexpected archive projection: %+v", got)
	}
	if _, ok := got[FieldDebt]; ok {
		t.Fatalf("default-hidden debt leaked from archive: %+v", got)
	}
}

func TestDefaultFieldVisibility(t *testing.T) {
	vis := DefaultFieldVisibility()

	hiddenByDefault := map[FieldName]bool{
		FieldDebt:       true,
		FieldClientAddr: true,
		FieldTrafficSrc: true,
	}
	for _, name := range FieldNames {
		want := !hiddenByDefault[name]
		if vis.Visible(name) != want {
			t.Errorf("default visibility for %s: got %v, want %v", name, vis.Visible(name), want)
		}
	}
}

func TestResolveRole(t *testing.T) {
	cases := []struct {
		name        string
		userID      string
		adminChatID string
		want        string
	}{
		{"admin match", "96609347", "96609347", RoleAdmin},
		{"other user", "42", "96609347", RoleClient},
		{"no admin configured", "96609347", "", RoleClient},
		{"empty user", "", "96609347", RoleClient},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveRole(tc.userID, tc.adminChatID); got != tc.want {
				t.Fatalf("ResolveRole(%q, %q) = %q, want %q", tc.userID, tc.adminChatID, got, tc.want)
			}
		})
	}
}
