package searchsort

import (
	"github.com/masteryyh/tablekit/pkg/utils/pagination"
)

// SortField binds a sort key, the value accepted in the "sort" URL parameter,
// to a field reference understood by the query layer.
type SortField[F any] struct {
	Key   string
	Field F
}

func Sortable[F any](key string, field F) SortField[F] {
	return SortField[F]{Key: key, Field: field}
}

// Config is the per-table search/sort setup. Every field is optional.
type Config[F any] struct {
	// SearchableFields are matched against the search term, OR'd together
	SearchableFields []F

	// SortableFields lists the valid sort keys in order, the first one is the
	// fallback when neither the URL nor DefaultSort name a key
	SortableFields []SortField[F]

	// DefaultSort is used when the URL has no "sort" parameter
	DefaultSort string

	// DefaultOrder is used when the URL has no valid "order" parameter, asc when unset
	DefaultOrder pagination.OrderType

	// PageSize is used when the URL has no valid "pageSize" parameter, 25 when unset
	PageSize int

	// MaxPageSize caps a page size requested through the URL, 0 means no cap
	MaxPageSize int
}

// resolved returns a copy of the config with built-in defaults filled in.
// Each field is handled on its own: an explicitly set field always wins over
// its default, an unset one gets the default.
func (c Config[F]) resolved() Config[F] {
	out := c

	if out.PageSize <= 0 {
		out.PageSize = pagination.DefaultPageSize
	}

	if _, ok := pagination.ParseOrderType(string(out.DefaultOrder)); !ok {
		out.DefaultOrder = pagination.OrderTypeAscending
	}

	if out.MaxPageSize < 0 {
		out.MaxPageSize = 0
	}

	if out.SearchableFields == nil {
		out.SearchableFields = []F{}
	}
	if out.SortableFields == nil {
		out.SortableFields = []SortField[F]{}
	}
	return out
}

func (c Config[F]) sortField(key string) (F, bool) {
	for _, sf := range c.SortableFields {
		if sf.Key == key {
			return sf.Field, true
		}
	}
	var zero F
	return zero, false
}

func (c Config[F]) firstSortKey() string {
	if len(c.SortableFields) == 0 {
		return ""
	}
	return c.SortableFields[0].Key
}
