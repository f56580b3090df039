// Package gormclause plugs gorm's clause expressions into searchsort.
package gormclause

import (
	"net/url"
	"strings"

	"github.com/masteryyh/tablekit/pkg/searchsort"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Builder implements searchsort.QueryBuilder with gorm clause types.
type Builder struct{}

var _ searchsort.QueryBuilder[clause.Column, clause.Expression, clause.OrderByColumn] = Builder{}

func (Builder) Contains(field clause.Column, term string) clause.Expression {
	return clause.Like{Column: field, Value: "%" + term + "%"}
}

func (Builder) Or(conds ...clause.Expression) clause.Expression {
	return clause.Or(conds...)
}

func (Builder) Asc(field clause.Column) clause.OrderByColumn {
	return clause.OrderByColumn{Column: field}
}

func (Builder) Desc(field clause.Column) clause.OrderByColumn {
	return clause.OrderByColumn{Column: field, Desc: true}
}

type Helper = searchsort.Helper[clause.Column, clause.Expression, clause.OrderByColumn]

type Config = searchsort.Config[clause.Column]

func New(cfg Config, u *url.URL) *Helper {
	return searchsort.New[clause.Column, clause.Expression, clause.OrderByColumn](cfg, u, Builder{})
}

// Column parses a field reference from configuration. A name with a dot is
// treated as table.column, raw marks SQL expressions that must not be quoted.
func Column(name string, raw bool) clause.Column {
	if raw {
		return clause.Column{Name: name, Raw: true}
	}
	if tbl, col, ok := strings.Cut(name, "."); ok {
		return clause.Column{Table: tbl, Name: col}
	}
	return clause.Column{Name: name}
}

// Filter narrows db to the rows matching the search, if any.
func Filter(db *gorm.DB, h *Helper) *gorm.DB {
	if cond, ok := h.SearchFilter(); ok {
		return db.Where(cond)
	}
	return db
}

// Page applies ordering, limit and offset on top of Filter.
func Page(db *gorm.DB, h *Helper) *gorm.DB {
	tx := Filter(db, h)
	if order, ok := h.Ordering(); ok {
		tx = tx.Order(order)
	}
	window := h.Pagination()
	return tx.Limit(window.Limit).Offset(window.Offset)
}
