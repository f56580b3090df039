// Package searchsort derives search, sort and pagination state from a request
// URL and turns it into query fragments and navigation links.
package searchsort

import (
	"net/url"
	"strconv"

	"github.com/masteryyh/tablekit/pkg/utils/pagination"
)

const (
	ParamSearch   = "search"
	ParamSort     = "sort"
	ParamOrder    = "order"
	ParamPage     = "page"
	ParamPageSize = "pageSize"
)

// QueryBuilder is implemented by the query layer. F is its field reference,
// C a combinable condition and O an ordering expression.
type QueryBuilder[F, C, O any] interface {
	// Contains matches rows whose field contains term as a substring
	Contains(field F, term string) C
	Or(conds ...C) C
	Asc(field F) O
	Desc(field F) O
}

// Params is the normalized per-request state.
type Params struct {
	SearchTerm string               `json:"searchTerm"`
	SortBy     string               `json:"sortBy"`
	SortOrder  pagination.OrderType `json:"sortOrder"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
}

type Helper[F, C, O any] struct {
	config  Config[F]
	builder QueryBuilder[F, C, O]
	query   *Query
	params  Params
}

// New resolves the request state from u. Malformed or unknown values in the
// URL fall back to the configured defaults, New never fails.
func New[F, C, O any](cfg Config[F], u *url.URL, builder QueryBuilder[F, C, O]) *Helper[F, C, O] {
	config := cfg.resolved()
	query := QueryFromURL(u)

	return &Helper[F, C, O]{
		config:  config,
		builder: builder,
		query:   query,
		params:  resolveParams(config, query),
	}
}

func resolveParams[F any](config Config[F], query *Query) Params {
	params := Params{
		SortOrder: config.DefaultOrder,
		Page:      1,
		PageSize:  config.PageSize,
	}

	params.SearchTerm, _ = query.Get(ParamSearch)

	// sort: URL > DefaultSort > first sortable key > ""
	if sortBy, _ := query.Get(ParamSort); sortBy != "" {
		params.SortBy = sortBy
	} else if config.DefaultSort != "" {
		params.SortBy = config.DefaultSort
	} else {
		params.SortBy = config.firstSortKey()
	}

	if raw, ok := query.Get(ParamOrder); ok {
		if order, valid := pagination.ParseOrderType(raw); valid {
			params.SortOrder = order
		}
	}

	if raw, ok := query.Get(ParamPageSize); ok {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			params.PageSize = size
			if config.MaxPageSize > 0 && size > config.MaxPageSize {
				params.PageSize = config.MaxPageSize
			}
		}
	}

	if raw, ok := query.Get(ParamPage); ok {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = min(page, pagination.LastPage(params.PageSize))
		}
	}

	return params
}

func (h *Helper[F, C, O]) Params() Params {
	return h.params
}

func (h *Helper[F, C, O]) SearchTerm() string {
	return h.params.SearchTerm
}

func (h *Helper[F, C, O]) SortBy() string {
	return h.params.SortBy
}

func (h *Helper[F, C, O]) SortOrder() pagination.OrderType {
	return h.params.SortOrder
}

func (h *Helper[F, C, O]) Page() int {
	return h.params.Page
}

func (h *Helper[F, C, O]) PageSize() int {
	return h.params.PageSize
}

// SearchFilter returns the OR of a substring match on every searchable field.
// ok is false when there is no search term or nothing to search in.
func (h *Helper[F, C, O]) SearchFilter() (cond C, ok bool) {
	if h.params.SearchTerm == "" || len(h.config.SearchableFields) == 0 {
		return cond, false
	}

	conds := make([]C, 0, len(h.config.SearchableFields))
	for _, field := range h.config.SearchableFields {
		conds = append(conds, h.builder.Contains(field, h.params.SearchTerm))
	}
	return h.builder.Or(conds...), true
}

// Ordering returns the ordering for the active sort key. ok is false when no
// key is active or the key is not one of the sortable fields.
func (h *Helper[F, C, O]) Ordering() (order O, ok bool) {
	if h.params.SortBy == "" {
		return order, false
	}

	field, found := h.config.sortField(h.params.SortBy)
	if !found {
		return order, false
	}

	if h.params.SortOrder == pagination.OrderTypeAscending {
		return h.builder.Asc(field), true
	}
	return h.builder.Desc(field), true
}

func (h *Helper[F, C, O]) Pagination() pagination.Window {
	return pagination.NewWindow(h.params.Page, h.params.PageSize)
}

// PaginationInfo is meant for display once the total count is known, the
// current page is clamped into the available range.
func (h *Helper[F, C, O]) PaginationInfo(totalRecords int64) pagination.Info {
	return pagination.NewInfo(totalRecords, h.params.Page, h.params.PageSize)
}

// PageURL keeps every parameter of the request and only swaps the page.
func (h *Helper[F, C, O]) PageURL(page int) string {
	query := h.query.Clone()
	query.Set(ParamPage, strconv.Itoa(page))
	return query.String()
}

// SortURL links to the table sorted by column, starting over from the first
// page. Clicking the active column while ascending flips it to descending,
// every other click sorts ascending.
func (h *Helper[F, C, O]) SortURL(column string) string {
	order := pagination.OrderTypeAscending
	if h.params.SortBy == column {
		order = h.params.SortOrder.Reverse()
	}

	query := h.query.Clone()
	query.Set(ParamSort, column)
	query.Set(ParamOrder, string(order))
	query.Set(ParamPage, "1")
	return query.String()
}

func (h *Helper[F, C, O]) IsSorted(column string) bool {
	return column != "" && h.params.SortBy == column
}

// SortIndicator is the arrow shown next to the active sort column.
func (h *Helper[F, C, O]) SortIndicator(column string) string {
	if !h.IsSorted(column) {
		return ""
	}
	if h.params.SortOrder == pagination.OrderTypeAscending {
		return " ↑"
	}
	return " ↓"
}

// ResultCount reports the number of matches only while a search is active.
func (h *Helper[F, C, O]) ResultCount(totalRecords int64) (int64, bool) {
	if h.params.SearchTerm == "" {
		return 0, false
	}
	return totalRecords, true
}
