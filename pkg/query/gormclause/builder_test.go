package gormclause

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/masteryyh/tablekit/pkg/searchsort"
	"github.com/masteryyh/tablekit/pkg/utils/pagination"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type person struct {
	ID    uint `gorm:"primaryKey"`
	Name  string
	Email string
	Age   int
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&person{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	people := []person{
		{Name: "Alice", Email: "alice@example.com", Age: 31},
		{Name: "Bob", Email: "bob@example.org", Age: 25},
		{Name: "Carol", Email: "carol@example.com", Age: 47},
		{Name: "Dave", Email: "dave@example.net", Age: 19},
		{Name: "Eve", Email: "eve@example.com", Age: 38},
	}
	if err := db.Create(&people).Error; err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return db
}

var peopleConfig = Config{
	SearchableFields: []clause.Column{Column("name", false), Column("email", false)},
	SortableFields: []searchsort.SortField[clause.Column]{
		searchsort.Sortable("name", Column("name", false)),
		searchsort.Sortable("age", Column("age", false)),
	},
	DefaultOrder: pagination.OrderTypeAscending,
	PageSize:     2,
}

func newHelper(t *testing.T, rawQuery string) *Helper {
	t.Helper()
	u, err := url.Parse("http://localhost/people?" + rawQuery)
	if err != nil {
		t.Fatalf("failed to parse url: %v", err)
	}
	return New(peopleConfig, u)
}

func names(people []person) string {
	out := make([]string, len(people))
	for idx, p := range people {
		out[idx] = p.Name
	}
	return strings.Join(out, ",")
}

func TestPageOrdersAndLimits(t *testing.T) {
	db := openTestDB(t)
	h := newHelper(t, "sort=age&order=desc&page=2")

	var people []person
	if err := Page(db.Model(&person{}), h).Find(&people).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if got := names(people); got != "Alice,Bob" {
		t.Fatalf("expected 'Alice,Bob', got '%s'", got)
	}
}

func TestFilterSearchesAllFields(t *testing.T) {
	db := openTestDB(t)
	h := newHelper(t, "search=example.com&pageSize=10")

	var total int64
	if err := Filter(db.Model(&person{}), h).Count(&total).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 matches, got %d", total)
	}

	h = newHelper(t, "search=bo&pageSize=10")
	var people []person
	if err := Page(db.Model(&person{}), h).Find(&people).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if got := names(people); got != "Bob" {
		t.Fatalf("expected 'Bob', got '%s'", got)
	}
}

func TestPageIgnoresUnknownSort(t *testing.T) {
	db := openTestDB(t)
	h := newHelper(t, "sort=password&pageSize=10")

	stmt := Page(db.Session(&gorm.Session{DryRun: true}).Model(&person{}), h).Find(&[]person{}).Statement
	sql := stmt.SQL.String()
	if strings.Contains(sql, "ORDER BY") {
		t.Fatalf("expected no ORDER BY, got %s", sql)
	}
}

func TestPageStatement(t *testing.T) {
	db := openTestDB(t)
	h := newHelper(t, "search=x&sort=name&order=desc&page=3&pageSize=10")

	stmt := Page(db.Session(&gorm.Session{DryRun: true}).Table("people"), h).Find(&[]map[string]any{}).Statement
	sql := stmt.SQL.String()

	if strings.Count(sql, "LIKE") != 2 || !strings.Contains(sql, " OR ") {
		t.Fatalf("expected two OR'd LIKE conditions, got %s", sql)
	}
	if !strings.Contains(sql, "ORDER BY `name` DESC") {
		t.Fatalf("expected descending order by name, got %s", sql)
	}
	if !strings.Contains(sql, "LIMIT 10") || !strings.Contains(sql, "OFFSET 20") {
		t.Fatalf("expected limit 10 offset 20, got %s", sql)
	}
	if len(stmt.Vars) != 2 || fmt.Sprint(stmt.Vars[0]) != "%x%" {
		t.Fatalf("expected wildcard wrapped vars, got %v", stmt.Vars)
	}
}

func TestColumn(t *testing.T) {
	if c := Column("users.name", false); c.Table != "users" || c.Name != "name" {
		t.Fatalf("unexpected column %+v", c)
	}
	if c := Column("lower(name)", true); !c.Raw || c.Name != "lower(name)" {
		t.Fatalf("unexpected raw column %+v", c)
	}
}
