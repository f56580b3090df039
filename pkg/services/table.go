/*
Copyright © 2026 masteryyh <yyh991013@163.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package services

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"github.com/masteryyh/tablekit/pkg/config"
	"github.com/masteryyh/tablekit/pkg/conn"
	"github.com/masteryyh/tablekit/pkg/customerrors"
	"github.com/masteryyh/tablekit/pkg/models"
	"github.com/masteryyh/tablekit/pkg/query/gormclause"
	"github.com/masteryyh/tablekit/pkg/searchsort"
	"github.com/masteryyh/tablekit/pkg/table"
	"github.com/masteryyh/tablekit/pkg/utils/pagination"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pageLinks is the number of page links offered around the current page.
const pageLinks = 7

type TableService struct {
	db        *gorm.DB
	tables    map[string]*config.TableConfig
	processor *table.Processor
	renderers *table.Renderers
}

var (
	tableService *TableService
	tableOnce    sync.Once
)

func NewTableService(db *gorm.DB, tables map[string]*config.TableConfig, logger *slog.Logger) *TableService {
	if tables == nil {
		tables = map[string]*config.TableConfig{}
	}
	return &TableService{
		db:        db,
		tables:    tables,
		processor: table.NewProcessor(logger),
		renderers: table.GetRenderers(),
	}
}

func GetTableService() *TableService {
	tableOnce.Do(func() {
		tableService = NewTableService(
			conn.GetDB(),
			config.GetConfigManager().GetConfig().Tables,
			slog.Default(),
		)
	})
	return tableService
}

func (s *TableService) ListTables(ctx context.Context, request *pagination.PageRequest) (*pagination.PagedResponse[models.TableSummaryDto], error) {
	names := (&config.AppConfig{Tables: s.tables}).TableNames()

	start := (request.Page - 1) * request.PageSize
	pageNames := lo.Slice(names, start, start+request.PageSize)

	return &pagination.PagedResponse[models.TableSummaryDto]{
		Total:    int64(len(names)),
		PageSize: request.PageSize,
		Page:     request.Page,
		Data: lo.Map(pageNames, func(name string, _ int) models.TableSummaryDto {
			tc := s.tables[name]
			return models.TableSummaryDto{
				Name:       name,
				Table:      tc.Table,
				Columns:    len(tc.Columns),
				Searchable: len(tc.Searchable) > 0,
				SortKeys: lo.Map(tc.Sortable, func(sc config.SortableConfig, _ int) string {
					return sc.Key
				}),
			}
		}),
	}, nil
}

func helperConfig(tc *config.TableConfig) gormclause.Config {
	return gormclause.Config{
		SearchableFields: lo.Map(tc.Searchable, func(name string, _ int) clause.Column {
			return gormclause.Column(name, false)
		}),
		SortableFields: lo.Map(tc.Sortable, func(sc config.SortableConfig, _ int) searchsort.SortField[clause.Column] {
			return searchsort.Sortable(sc.Key, gormclause.Column(sc.Column, sc.Raw))
		}),
		DefaultSort:  tc.DefaultSort,
		DefaultOrder: tc.DefaultOrder,
		PageSize:     tc.PageSize,
		MaxPageSize:  maxPageSize(tc),
	}
}

// maxPageSize never leaves URL page sizes uncapped, a configured page size
// larger than the default cap raises it.
func maxPageSize(tc *config.TableConfig) int {
	if tc.MaxPageSize > 0 {
		return tc.MaxPageSize
	}
	return max(pagination.MaxPageSize, tc.PageSize)
}

// GetTablePage runs the search, sort and pagination described by u against the
// named table and returns the rendered page.
func (s *TableService) GetTablePage(ctx context.Context, name string, u *url.URL) (*models.TablePageDto, error) {
	tc, ok := s.tables[name]
	if !ok || tc == nil {
		return nil, customerrors.ErrTableNotFound
	}

	columns, err := tc.BoundColumns(s.renderers)
	if err != nil {
		slog.ErrorContext(ctx, "failed to bind column renderers", "table", name, "error", err)
		return nil, customerrors.ErrInvalidTableConfig
	}

	actions := tc.RowActions()
	processed, err := s.processor.Process(columns, tc.PrimaryColumn, actions)
	if err != nil {
		slog.ErrorContext(ctx, "failed to process columns", "table", name, "error", err)
		return nil, customerrors.ErrInvalidTableConfig
	}

	helper := gormclause.New(helperConfig(tc), u)

	var total int64
	if err := gormclause.Filter(s.db.WithContext(ctx).Table(tc.Table), helper).Count(&total).Error; err != nil {
		slog.ErrorContext(ctx, "failed to count rows", "table", name, "error", err)
		return nil, err
	}

	var rows []map[string]any
	if err := gormclause.Page(s.db.WithContext(ctx).Table(tc.Table), helper).Find(&rows).Error; err != nil {
		slog.ErrorContext(ctx, "failed to query rows", "table", name, "error", err)
		return nil, err
	}

	info := helper.PaginationInfo(total)
	page := &models.TablePageDto{
		Name: name,
		Columns: lo.Map(processed.AllColumns, func(col table.Column, _ int) models.ColumnDto {
			return columnDto(col, processed, helper)
		}),
		MobileColumns: lo.Map(processed.MobileColumns, func(col table.Column, _ int) string {
			return col.Key
		}),
		PrimaryColumn: processed.PrimaryColumn.Key,
		HasActions:    processed.HasActions,
		TotalColumns:  table.TotalColumnCount(processed.AllColumns, processed.HasActions),
		Rows: lo.Map(rows, func(row map[string]any, _ int) models.RowDto {
			return models.RowDto{
				Cells:       table.RenderRow(processed.AllColumns, row, false),
				MobileCells: table.RenderRow(processed.MobileColumns, row, true),
				Actions: lo.Map(actions.ForRow(row), func(a table.Action, _ int) models.ActionDto {
					return models.ActionDto{Label: a.Label, URL: a.URL, ClassName: a.ClassName, Icon: a.Icon}
				}),
			}
		}),
		Params:     helper.Params(),
		Pagination: info,
		Pages: lo.Map(info.Pages(pageLinks), func(p int, _ int) models.PageLinkDto {
			return models.PageLinkDto{
				Page:    p,
				URL:     helper.PageURL(p),
				Current: p == info.CurrentPage,
			}
		}),
	}

	if count, ok := helper.ResultCount(total); ok {
		page.ResultCount = &count
	}
	if info.HasPrev {
		page.PrevURL = helper.PageURL(info.CurrentPage - 1)
	}
	if info.HasNext {
		page.NextURL = helper.PageURL(info.CurrentPage + 1)
	}
	return page, nil
}

func columnDto(col table.Column, processed *table.Processed, helper *gormclause.Helper) models.ColumnDto {
	dto := models.ColumnDto{
		Key:          col.Key,
		Label:        col.Label,
		MobileLabel:  col.DisplayLabel(true),
		ClassName:    col.ClassName,
		HideOnMobile: col.HideOnMobile,
		Primary:      col.Key == processed.PrimaryColumn.Key,
		Sortable:     col.Sortable,
	}
	if col.Sortable {
		param := col.SortParam()
		dto.Sorted = helper.IsSorted(param)
		dto.SortURL = helper.SortURL(param)
		dto.SortIndicator = helper.SortIndicator(param)
	}
	return dto
}
