package pagination

import "math"

const (
	DefaultPageSize = 25

	// MaxPageSize caps page sizes coming from untrusted requests
	MaxPageSize = 100
)

type PagedResponse[T any] struct {
	Total    int64 `json:"total"`
	PageSize int   `json:"pageSize"`
	Page     int   `json:"page"`
	Data     []T   `json:"data"`
}

type OrderType string

const (
	OrderTypeAscending  OrderType = "asc"
	OrderTypeDescending OrderType = "desc"
)

// ParseOrderType accepts exactly "asc" or "desc", anything else is rejected.
func ParseOrderType(raw string) (OrderType, bool) {
	switch OrderType(raw) {
	case OrderTypeAscending, OrderTypeDescending:
		return OrderType(raw), true
	}
	return "", false
}

func (o OrderType) Reverse() OrderType {
	if o == OrderTypeAscending {
		return OrderTypeDescending
	}
	return OrderTypeAscending
}

type PageRequest struct {
	Page     int `query:"page" json:"page" form:"page" validate:"required,min=1"`
	PageSize int `query:"pageSize" json:"pageSize" form:"pageSize" validate:"required,min=1,max=100"`
}

func (p *PageRequest) ApplyDefaults() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Window is the raw limit/offset pair handed to the query engine, never clamped
// against the record count.
type Window struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// LastPage is the highest page whose offset still fits in an int.
func LastPage(pageSize int) int {
	if pageSize <= 0 {
		return math.MaxInt
	}
	return math.MaxInt/pageSize + 1
}

// NewWindow clamps page into [1, LastPage(pageSize)] so the offset never overflows.
func NewWindow(page, pageSize int) Window {
	if pageSize < 0 {
		pageSize = 0
	}
	page = min(max(1, page), LastPage(pageSize))
	return Window{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
}

// Info is the display oriented view of a page, computed once the record count is known.
type Info struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	PageSize     int   `json:"pageSize"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
	StartRecord  int64 `json:"startRecord"`
	EndRecord    int64 `json:"endRecord"`
}

func NewInfo(totalRecords int64, page, pageSize int) Info {
	if totalRecords < 0 {
		totalRecords = 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := int(math.Ceil(float64(totalRecords) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	currentPage := min(max(1, page), totalPages)

	var startRecord int64
	if totalRecords > 0 {
		startRecord = int64(currentPage-1)*int64(pageSize) + 1
	}
	endRecord := min(int64(currentPage)*int64(pageSize), totalRecords)

	return Info{
		CurrentPage:  currentPage,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		PageSize:     pageSize,
		HasNext:      currentPage < totalPages,
		HasPrev:      currentPage > 1,
		StartRecord:  startRecord,
		EndRecord:    endRecord,
	}
}

// Pages returns at most size page numbers centered on the current page.
func (i Info) Pages(size int) []int {
	if size <= 0 || size > i.TotalPages {
		size = i.TotalPages
	}

	start := i.CurrentPage - size/2
	if start < 1 {
		start = 1
	}
	if start+size-1 > i.TotalPages {
		start = i.TotalPages - size + 1
	}

	pages := make([]int, size)
	for idx := range pages {
		pages[idx] = start + idx
	}
	return pages
}
