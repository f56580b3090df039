package table

import "testing"

func TestExpandURL(t *testing.T) {
	row := map[string]any{"id": 42, "slug": "jane-doe"}

	if got := ExpandURL("/contacts/{id}/edit", row); got != "/contacts/42/edit" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := ExpandURL("/p/{slug}?ref={missing}", row); got != "/p/jane-doe?ref=" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := ExpandURL("/static", row); got != "/static" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestExpandURLEscapesValues(t *testing.T) {
	row := map[string]any{"name": "a/b?c#d e", "email": "ada@example.com"}

	if got := ExpandURL("/c/{name}/edit", row); got != "/c/a%2Fb%3Fc%23d%20e/edit" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := ExpandURL("/c/{email}", row); got != "/c/ada@example.com" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestActionsForRow(t *testing.T) {
	row := map[string]any{"id": "abc"}
	actions := Actions{
		ViewURL:   "/c/{id}",
		DeleteURL: "/c/{id}/delete",
		Custom:    []Action{{Label: "Archive", URL: "/c/{id}/archive"}},
	}

	got := actions.ForRow(row)
	if len(got) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(got))
	}
	if got[0].Label != "View" || got[0].URL != "/c/abc" {
		t.Fatalf("unexpected view action %+v", got[0])
	}
	if got[1].Label != "Delete" || got[1].ClassName != "danger" {
		t.Fatalf("unexpected delete action %+v", got[1])
	}
	if got[2].URL != "/c/abc/archive" {
		t.Fatalf("unexpected custom action %+v", got[2])
	}
	if actions.Custom[0].URL != "/c/{id}/archive" {
		t.Fatal("expected custom action template to stay untouched")
	}

	actions.Hidden = true
	if actions.ForRow(row) != nil {
		t.Fatal("expected no actions when hidden")
	}
}
