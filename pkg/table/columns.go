// Package table validates and reshapes column descriptors for rendering data tables.
package table

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
)

// RenderFunc formats a cell value, row is the whole record the value came from.
type RenderFunc func(value any, row map[string]any) string

type Column struct {
	Key          string     `mapstructure:"key" json:"key" yaml:"key" validate:"required"`
	Label        string     `mapstructure:"label" json:"label" yaml:"label" validate:"required"`
	Sortable     bool       `mapstructure:"sortable" json:"sortable,omitempty" yaml:"sortable,omitempty"`
	SortKey      string     `mapstructure:"sortKey" json:"sortKey,omitempty" yaml:"sortKey,omitempty"`
	Render       RenderFunc `mapstructure:"-" json:"-" yaml:"-"`
	MobileRender RenderFunc `mapstructure:"-" json:"-" yaml:"-"`
	ClassName    string     `mapstructure:"className" json:"className,omitempty" yaml:"className,omitempty"`
	MobileLabel  string     `mapstructure:"mobileLabel" json:"mobileLabel,omitempty" yaml:"mobileLabel,omitempty"`
	HideOnMobile bool       `mapstructure:"hideOnMobile" json:"hideOnMobile,omitempty" yaml:"hideOnMobile,omitempty"`
}

type Action struct {
	Label     string `mapstructure:"label" json:"label" yaml:"label" validate:"required"`
	URL       string `mapstructure:"url" json:"url" yaml:"url" validate:"required"`
	ClassName string `mapstructure:"className" json:"className,omitempty" yaml:"className,omitempty"`
	Icon      string `mapstructure:"icon" json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Actions describes the per-row actions of a table. Hidden turns the actions
// column off regardless of the URLs, the zero value shows it whenever there is
// something to show.
type Actions struct {
	ViewURL   string
	EditURL   string
	DeleteURL string
	Custom    []Action
	Hidden    bool
}

type Processed struct {
	AllColumns    []Column
	MobileColumns []Column
	// PrimaryColumn points into AllColumns
	PrimaryColumn *Column
	HasActions    bool
}

var ErrNoColumns = errors.New("columns must be a non-empty array")

type ColumnError struct {
	Index int
	Err   error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %d must have both 'key' and 'label' properties", e.Index)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateColumns checks that there is at least one column and that every
// column has a key and a label. The input is returned unchanged.
func ValidateColumns(columns []Column) ([]Column, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	v := getValidator()
	for idx := range columns {
		if err := v.Struct(&columns[idx]); err != nil {
			return nil, &ColumnError{Index: idx, Err: err}
		}
	}
	return columns, nil
}

// MobileColumns drops the columns marked HideOnMobile, keeping order.
func MobileColumns(columns []Column) []Column {
	mobile := make([]Column, 0, len(columns))
	for _, col := range columns {
		if !col.HideOnMobile {
			mobile = append(mobile, col)
		}
	}
	return mobile
}

func ShouldShowActions(actions Actions) bool {
	if actions.Hidden {
		return false
	}
	return actions.ViewURL != "" || actions.EditURL != "" || actions.DeleteURL != "" || len(actions.Custom) > 0
}

// TotalColumnCount is the number of rendered columns, actions included.
func TotalColumnCount(columns []Column, hasActions bool) int {
	if hasActions {
		return len(columns) + 1
	}
	return len(columns)
}

// Processor carries the logger used to report recoverable configuration mistakes.
type Processor struct {
	logger *slog.Logger
}

func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger}
}

// PrimaryColumn returns the column keyed primaryKey, or the first column when
// primaryKey is empty. An unknown key is logged and also yields the first column.
func (p *Processor) PrimaryColumn(columns []Column, primaryKey string) (*Column, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	if primaryKey == "" {
		return &columns[0], nil
	}

	for idx := range columns {
		if columns[idx].Key == primaryKey {
			return &columns[idx], nil
		}
	}

	p.logger.Warn("primary column not found, using first column", "primaryColumn", primaryKey, "fallback", columns[0].Key)
	return &columns[0], nil
}

// Process validates the columns and derives everything a table renderer needs.
func (p *Processor) Process(columns []Column, primaryKey string, actions Actions) (*Processed, error) {
	validated, err := ValidateColumns(columns)
	if err != nil {
		return nil, err
	}

	primary, err := p.PrimaryColumn(validated, primaryKey)
	if err != nil {
		return nil, err
	}

	return &Processed{
		AllColumns:    validated,
		MobileColumns: MobileColumns(validated),
		PrimaryColumn: primary,
		HasActions:    ShouldShowActions(actions),
	}, nil
}

func PrimaryColumn(columns []Column, primaryKey string) (*Column, error) {
	return NewProcessor(nil).PrimaryColumn(columns, primaryKey)
}

func ProcessColumns(columns []Column, primaryKey string, actions Actions) (*Processed, error) {
	return NewProcessor(nil).Process(columns, primaryKey, actions)
}
