package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/masteryyh/tablekit/pkg/config"
	"github.com/masteryyh/tablekit/pkg/conn"
	"github.com/masteryyh/tablekit/pkg/models"
	"github.com/masteryyh/tablekit/pkg/services"
	"github.com/masteryyh/tablekit/pkg/table"
	"github.com/masteryyh/tablekit/pkg/utils/pagination"
)

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := conn.Connect(context.Background(), &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "tablekit.db"),
		Seed:   true,
	}, false)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	tables := map[string]*config.TableConfig{
		"contacts": {
			Table: "contacts",
			Columns: []table.Column{
				{Key: "name", Label: "Name", Sortable: true},
				{Key: "company", Label: "Company", Sortable: true},
			},
			Searchable: []string{"name", "company"},
			Sortable: []config.SortableConfig{
				{Key: "name", Column: "name"},
				{Key: "company", Column: "company"},
			},
			PageSize: 4,
		},
	}

	engine := gin.New()
	v1 := NewV1Routes(NewTableRoutes(services.NewTableService(db, tables, nil)))
	if err := v1.RegisterRoutes(engine.Group("/api/v1")); err != nil {
		t.Fatalf("failed to register routes: %v", err)
	}
	return engine
}

func get[T any](t *testing.T, engine *gin.Engine, target string) envelope[T] {
	t.Helper()
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected http 200, got %d", rec.Code)
	}

	var body envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode %s: %v", rec.Body.String(), err)
	}
	return body
}

func TestGetTablePageRoute(t *testing.T) {
	engine := newTestEngine(t)

	body := get[models.TablePageDto](t, engine, "/api/v1/tables/contacts?search=ibm&sort=name&order=asc")
	if body.Code != http.StatusOK {
		t.Fatalf("expected code 200, got %d (%s)", body.Code, body.Message)
	}

	page := body.Data
	if len(page.Rows) != 2 || page.Rows[0].Cells[0] != "Frances Allen" || page.Rows[1].Cells[0] != "John Backus" {
		t.Fatalf("unexpected rows %+v", page.Rows)
	}
	if page.ResultCount == nil || *page.ResultCount != 2 {
		t.Fatalf("expected result count 2, got %v", page.ResultCount)
	}
	if page.Columns[0].SortURL != "?search=ibm&sort=name&order=desc&page=1" {
		t.Fatalf("unexpected sort url %q", page.Columns[0].SortURL)
	}
	if page.Params.PageSize != 4 {
		t.Fatalf("expected page size 4, got %d", page.Params.PageSize)
	}
}

func TestGetTablePageRouteErrors(t *testing.T) {
	engine := newTestEngine(t)

	body := get[any](t, engine, "/api/v1/tables/missing")
	if body.Code != http.StatusNotFound {
		t.Fatalf("expected code 404, got %d", body.Code)
	}

	body = get[any](t, engine, "/api/v1/tables/bad$name")
	if body.Code != http.StatusBadRequest {
		t.Fatalf("expected code 400, got %d", body.Code)
	}
}

func TestListTablesRoute(t *testing.T) {
	engine := newTestEngine(t)

	body := get[pagination.PagedResponse[models.TableSummaryDto]](t, engine, "/api/v1/tables")
	if body.Code != http.StatusOK {
		t.Fatalf("expected code 200, got %d", body.Code)
	}
	if body.Data.Total != 1 || body.Data.PageSize != 10 || body.Data.Data[0].Name != "contacts" {
		t.Fatalf("unexpected tables %+v", body.Data)
	}
}
