package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func newQueryFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "query"}
	cmd.Flags().StringP("search", "s", "", "")
	cmd.Flags().String("sort", "", "")
	cmd.Flags().String("order", "", "")
	cmd.Flags().Int("page", 1, "")
	cmd.Flags().Int("page-size", 0, "")
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return cmd
}

func TestBuildQueryKeepsRawOrder(t *testing.T) {
	cmd := newQueryFlags(t, "--page", "3", "--search", "bell labs")

	got := buildQuery(cmd, "?sort=name&search=old&order=desc")
	if got != "sort=name&search=bell+labs&order=desc&page=3" {
		t.Fatalf("unexpected query %q", got)
	}
}

func TestBuildQueryWithoutFlags(t *testing.T) {
	cmd := newQueryFlags(t)

	if got := buildQuery(cmd, ""); got != "" {
		t.Fatalf("expected empty query, got %q", got)
	}
	if got := buildQuery(cmd, "pageSize=5"); got != "pageSize=5" {
		t.Fatalf("unexpected query %q", got)
	}
}
