package searchsort

import (
	"net/url"
	"strconv"

	"github.com/masteryyh/tablekit/pkg/utils/pagination"
)

// ReportConfig is the search setup attached to a saved report.
type ReportConfig struct {
	DefaultSort  string               `mapstructure:"defaultSort" json:"defaultSort"`
	DefaultOrder pagination.OrderType `mapstructure:"defaultOrder" json:"defaultOrder"`
	PageSize     int                  `mapstructure:"pageSize" json:"pageSize"`
}

type ReportType string

const (
	ReportTypeTable ReportType = "table"
	ReportTypeChart ReportType = "chart"
)

type ReportDefinition struct {
	Type         ReportType
	SearchConfig *ReportConfig
}

// SortLinker is what a rendered report table needs to draw sortable headers.
type SortLinker interface {
	SortURL(column string) string
	SortIndicator(column string) string
	SortBy() string
}

// Report is the render only flavour of Helper: it reads the same URL
// parameters but never produces query fragments. Sorting keeps the current
// page and the first page is linked without a page parameter.
type Report struct {
	query  *Query
	report ReportDefinition
	params Params
}

func NewReport(u *url.URL, report ReportDefinition) *Report {
	query := QueryFromURL(u)
	return &Report{
		query:  query,
		report: report,
		params: resolveReportParams(query, report.SearchConfig),
	}
}

func resolveReportParams(query *Query, cfg *ReportConfig) Params {
	if cfg == nil {
		cfg = &ReportConfig{}
	}

	params := Params{
		SortBy:    cfg.DefaultSort,
		SortOrder: pagination.OrderTypeDescending,
		Page:      1,
		PageSize:  pagination.DefaultPageSize,
	}
	if order, ok := pagination.ParseOrderType(string(cfg.DefaultOrder)); ok {
		params.SortOrder = order
	}
	if cfg.PageSize > 0 {
		params.PageSize = cfg.PageSize
	}

	params.SearchTerm, _ = query.Get(ParamSearch)
	if sortBy, _ := query.Get(ParamSort); sortBy != "" {
		params.SortBy = sortBy
	}
	if raw, _ := query.Get(ParamOrder); raw != "" {
		if order, ok := pagination.ParseOrderType(raw); ok {
			params.SortOrder = order
		}
	}
	if raw, ok := query.Get(ParamPage); ok {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = page
		}
	}
	if raw, ok := query.Get(ParamPageSize); ok {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			params.PageSize = size
		}
	}
	return params
}

func (r *Report) Params() Params {
	return r.params
}

func (r *Report) SortBy() string {
	return r.params.SortBy
}

func (r *Report) SortURL(column string) string {
	order := pagination.OrderTypeAscending
	if r.params.SortBy == column {
		order = r.params.SortOrder.Reverse()
	}

	query := r.query.Clone()
	query.Del(ParamSort)
	query.Del(ParamOrder)
	query.Set(ParamSort, column)
	query.Set(ParamOrder, string(order))
	return query.String()
}

func (r *Report) SortIndicator(column string) string {
	if r.params.SortBy != column {
		return ""
	}
	if r.params.SortOrder == pagination.OrderTypeAscending {
		return " ↑"
	}
	return " ↓"
}

func (r *Report) PageURL(page int) string {
	query := r.query.Clone()
	query.Del(ParamPage)
	if page != 1 {
		query.Set(ParamPage, strconv.Itoa(page))
	}
	return query.String()
}

// SortLinker returns nil for reports without a search config.
func (r *Report) SortLinker() SortLinker {
	if r.report.SearchConfig == nil {
		return nil
	}
	return r
}

func (r *Report) Enabled() bool {
	return r.report.SearchConfig != nil && r.report.Type == ReportTypeTable
}

func (r *Report) SearchTerm() string {
	return r.params.SearchTerm
}

func (r *Report) ResultCount(totalRecords int64) (int64, bool) {
	if r.params.SearchTerm == "" {
		return 0, false
	}
	return totalRecords, true
}
