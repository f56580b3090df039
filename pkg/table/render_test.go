package table

import (
	"testing"
	"time"
)

func TestRenderersBuiltIns(t *testing.T) {
	r := NewRenderers()

	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"upper", "active", "ACTIVE"},
		{"lower", "ADMIN", "admin"},
		{"yesno", true, "Yes"},
		{"yesno", int64(0), "No"},
		{"yesno", nil, "No"},
		{"date", time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC), "2024-03-09"},
		{"datetime", time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC), "2024-03-09 15:04:05"},
		{"date", "not a time", "not a time"},
		{"short", "a very long description that goes on", "a very long description…"},
		{"short", "brief", "brief"},
	}

	for _, tc := range cases {
		fn, ok := r.Get(tc.name)
		if !ok {
			t.Fatalf("expected renderer %q to be registered", tc.name)
		}
		if got := fn(tc.value, nil); got != tc.want {
			t.Fatalf("%s(%v): expected %q, got %q", tc.name, tc.value, tc.want, got)
		}
	}
}

func TestRenderersResolve(t *testing.T) {
	r := NewRenderers()

	fn, err := r.Resolve("")
	if err != nil || fn != nil {
		t.Fatalf("expected empty name to resolve to nil, got %v", err)
	}

	if _, err := r.Resolve("missing"); err == nil {
		t.Fatal("expected unknown renderer to fail")
	}

	r.Register("stars", func(value any, _ map[string]any) string { return "*" })
	fn, err = r.Resolve("stars")
	if err != nil || fn("x", nil) != "*" {
		t.Fatalf("expected custom renderer, got %v", err)
	}
}

func TestGetRenderersIsShared(t *testing.T) {
	if GetRenderers() != GetRenderers() {
		t.Fatal("expected the same registry instance")
	}
}
