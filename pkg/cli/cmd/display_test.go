package cmd

import (
	"strings"
	"testing"

	"github.com/masteryyh/tablekit/pkg/models"
	"github.com/masteryyh/tablekit/pkg/searchsort"
	"github.com/masteryyh/tablekit/pkg/utils/pagination"
)

func samplePage() *models.TablePageDto {
	count := int64(2)
	return &models.TablePageDto{
		Name: "contacts",
		Columns: []models.ColumnDto{
			{Key: "name", Label: "Name", MobileLabel: "Name", Sortable: true, Sorted: true, SortIndicator: " ↑"},
			{Key: "email", Label: "Email address", MobileLabel: "Email", HideOnMobile: true},
		},
		MobileColumns: []string{"name"},
		PrimaryColumn: "name",
		HasActions:    true,
		Rows: []models.RowDto{
			{Cells: []string{"Ken Thompson", "ken@bell.example"}, MobileCells: []string{"Ken Thompson"}, Actions: []models.ActionDto{{Label: "Edit", URL: "/c/1/edit"}}},
			{Cells: []string{"Rob Pike", "rob@bell.example"}, MobileCells: []string{"Rob Pike"}},
		},
		Params:      searchsortParams("bell"),
		Pagination:  pagination.NewInfo(2, 1, 25),
		ResultCount: &count,
	}
}

func TestRenderTablePageDesktop(t *testing.T) {
	out := renderTablePage(samplePage(), false, 0)

	for _, want := range []string{"Name ↑", "Email address", "Actions", "ken@bell.example", "Edit", "2 matches for \"bell\"", "Showing 1-2 of 2", "Page 1/1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderTablePageMobile(t *testing.T) {
	out := renderTablePage(samplePage(), true, 0)

	if strings.Contains(out, "ken@bell.example") || strings.Contains(out, "Actions") {
		t.Fatalf("expected hidden columns to be dropped, got:\n%s", out)
	}
	if !strings.Contains(out, "Rob Pike") {
		t.Fatalf("expected mobile cells, got:\n%s", out)
	}
}

func TestRenderTablePageEmpty(t *testing.T) {
	page := samplePage()
	page.Rows = nil
	page.ResultCount = nil
	page.Pagination = pagination.NewInfo(0, 1, 25)

	out := renderTablePage(page, false, 0)
	if !strings.Contains(out, "No records") {
		t.Fatalf("expected empty summary, got:\n%s", out)
	}
}

func TestUseMobileLayout(t *testing.T) {
	if !useMobileLayout(true, 200) {
		t.Fatal("expected compact flag to force the mobile layout")
	}
	if !useMobileLayout(false, 60) {
		t.Fatal("expected narrow terminal to use the mobile layout")
	}
	if useMobileLayout(false, 0) || useMobileLayout(false, 120) {
		t.Fatal("expected desktop layout for unknown or wide terminals")
	}
}

func searchsortParams(term string) searchsort.Params {
	return searchsort.Params{SearchTerm: term, SortBy: "name", SortOrder: pagination.OrderTypeAscending, Page: 1, PageSize: 25}
}
