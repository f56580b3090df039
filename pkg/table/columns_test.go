package table

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func sampleColumns() []Column {
	return []Column{
		{Key: "name", Label: "Name", HideOnMobile: false},
		{Key: "email", Label: "Email", HideOnMobile: true},
		{Key: "role", Label: "Role", HideOnMobile: false},
		{Key: "status", Label: "Status", HideOnMobile: true},
	}
}

func TestValidateColumnsEmpty(t *testing.T) {
	_, err := ValidateColumns(nil)
	if !errors.Is(err, ErrNoColumns) {
		t.Fatalf("expected ErrNoColumns, got %v", err)
	}
	if !strings.Contains(err.Error(), "non-empty array") {
		t.Fatalf("unexpected message: %s", err)
	}

	if _, err := ValidateColumns([]Column{}); !errors.Is(err, ErrNoColumns) {
		t.Fatalf("expected ErrNoColumns for empty slice, got %v", err)
	}
}

func TestValidateColumnsMissingKey(t *testing.T) {
	_, err := ValidateColumns([]Column{{Label: "Name"}})

	var colErr *ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected ColumnError, got %v", err)
	}
	if colErr.Index != 0 {
		t.Fatalf("expected index 0, got %d", colErr.Index)
	}
	if err.Error() != "column 0 must have both 'key' and 'label' properties" {
		t.Fatalf("unexpected message: %s", err)
	}
}

func TestValidateColumnsReportsFirstInvalid(t *testing.T) {
	columns := sampleColumns()
	columns[2].Label = ""
	columns[3].Key = ""

	_, err := ValidateColumns(columns)
	var colErr *ColumnError
	if !errors.As(err, &colErr) || colErr.Index != 2 {
		t.Fatalf("expected error at index 2, got %v", err)
	}
}

func TestValidateColumnsReturnsInput(t *testing.T) {
	columns := sampleColumns()
	validated, err := ValidateColumns(columns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(validated) != len(columns) {
		t.Fatalf("expected %d columns, got %d", len(columns), len(validated))
	}
	for idx := range columns {
		if validated[idx].Key != columns[idx].Key {
			t.Fatalf("order changed at %d: %s != %s", idx, validated[idx].Key, columns[idx].Key)
		}
	}
}

func TestMobileColumns(t *testing.T) {
	mobile := MobileColumns(sampleColumns())
	if len(mobile) != 2 {
		t.Fatalf("expected 2 mobile columns, got %d", len(mobile))
	}
	if mobile[0].Key != "name" || mobile[1].Key != "role" {
		t.Fatalf("expected [name role], got [%s %s]", mobile[0].Key, mobile[1].Key)
	}
}

func TestPrimaryColumnDefault(t *testing.T) {
	columns := sampleColumns()
	primary, err := PrimaryColumn(columns, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary != &columns[0] {
		t.Fatal("expected pointer to the first column")
	}
}

func TestPrimaryColumnByKey(t *testing.T) {
	columns := sampleColumns()
	primary, err := PrimaryColumn(columns, "role")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary != &columns[2] {
		t.Fatalf("expected pointer to 'role', got '%s'", primary.Key)
	}
}

func TestPrimaryColumnUnknownKeyWarns(t *testing.T) {
	var buf bytes.Buffer
	p := NewProcessor(slog.New(slog.NewTextHandler(&buf, nil)))

	columns := sampleColumns()
	primary, err := p.PrimaryColumn(columns, "nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary != &columns[0] {
		t.Fatalf("expected fallback to first column, got '%s'", primary.Key)
	}
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "nonexistent") {
		t.Fatalf("expected a warning mentioning the key, got %q", buf.String())
	}
}

func TestPrimaryColumnEmpty(t *testing.T) {
	if _, err := PrimaryColumn(nil, "name"); !errors.Is(err, ErrNoColumns) {
		t.Fatalf("expected ErrNoColumns, got %v", err)
	}
}

func TestShouldShowActions(t *testing.T) {
	if ShouldShowActions(Actions{}) {
		t.Fatal("expected no actions without urls")
	}
	if !ShouldShowActions(Actions{EditURL: "/edit"}) {
		t.Fatal("expected actions with an edit url")
	}
	if !ShouldShowActions(Actions{Custom: []Action{{Label: "Archive", URL: "/archive"}}}) {
		t.Fatal("expected actions with custom actions")
	}
	if ShouldShowActions(Actions{ViewURL: "/view", EditURL: "/edit", DeleteURL: "/delete", Hidden: true}) {
		t.Fatal("expected hidden actions to win")
	}
}

func TestTotalColumnCount(t *testing.T) {
	columns := sampleColumns()
	if TotalColumnCount(columns, false) != 4 {
		t.Fatalf("expected 4, got %d", TotalColumnCount(columns, false))
	}
	if TotalColumnCount(columns, true) != 5 {
		t.Fatalf("expected 5, got %d", TotalColumnCount(columns, true))
	}
}

func TestProcessColumns(t *testing.T) {
	processed, err := ProcessColumns(sampleColumns(), "email", Actions{ViewURL: "/view", EditURL: "/edit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(processed.AllColumns) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(processed.AllColumns))
	}
	if len(processed.MobileColumns) != 2 {
		t.Fatalf("expected 2 mobile columns, got %d", len(processed.MobileColumns))
	}
	if processed.PrimaryColumn.Key != "email" {
		t.Fatalf("expected primary 'email', got '%s'", processed.PrimaryColumn.Key)
	}
	if processed.PrimaryColumn != &processed.AllColumns[1] {
		t.Fatal("expected primary column to point into AllColumns")
	}
	if !processed.HasActions {
		t.Fatal("expected actions")
	}
}

func TestProcessColumnsInvalid(t *testing.T) {
	if _, err := ProcessColumns([]Column{{Key: "id"}}, "", Actions{}); err == nil {
		t.Fatal("expected validation error")
	}
}
