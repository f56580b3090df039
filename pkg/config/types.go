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

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/masteryyh/tablekit/pkg/table"
	"github.com/masteryyh/tablekit/pkg/utils/pagination"
)

// AppConfig is the config definition for this app
type AppConfig struct {
	// Debug mode enabled or not
	Debug bool `mapstructure:"debug"`

	// Port of the HTTP server
	Port int `mapstructure:"port"`

	// DB configuration
	DB *DatabaseConfig `mapstructure:"db"`

	// Tables served by the API, keyed by the name used in URLs
	Tables map[string]*TableConfig `mapstructure:"tables"`
}

type DatabaseDriver string

const (
	DriverSQLite   DatabaseDriver = "sqlite"
	DriverPostgres DatabaseDriver = "postgres"
)

// DatabaseConfig is the config definition for database connection
type DatabaseConfig struct {
	// Driver is either sqlite or postgres
	Driver DatabaseDriver `mapstructure:"driver"`

	// Path of the database file, sqlite only
	Path string `mapstructure:"path"`

	// Host of the database server
	Host string `mapstructure:"host"`

	// Port of the database server
	Port int `mapstructure:"port"`

	// Username for database authentication
	Username string `mapstructure:"username"`

	// Password for database authentication
	Password string `mapstructure:"password"`

	// Database name
	Database string `mapstructure:"database"`

	// Seed fills the demo contacts table on startup
	Seed bool `mapstructure:"seed"`
}

// SortableConfig maps a sort key to a column or SQL expression
type SortableConfig struct {
	Key    string `mapstructure:"key" yaml:"key"`
	Column string `mapstructure:"column" yaml:"column"`
	Raw    bool   `mapstructure:"raw" yaml:"raw,omitempty"`
}

// TableConfig describes one searchable, sortable table
type TableConfig struct {
	// Table is the SQL table rows are read from
	Table string `mapstructure:"table" yaml:"table"`

	Columns []table.Column `mapstructure:"columns" yaml:"columns"`

	// Searchable lists the columns matched against the search term
	Searchable []string `mapstructure:"searchable" yaml:"searchable,omitempty"`

	Sortable     []SortableConfig     `mapstructure:"sortable" yaml:"sortable,omitempty"`
	DefaultSort  string               `mapstructure:"defaultSort" yaml:"defaultSort,omitempty"`
	DefaultOrder pagination.OrderType `mapstructure:"defaultOrder" yaml:"defaultOrder,omitempty"`
	PageSize     int                  `mapstructure:"pageSize" yaml:"pageSize,omitempty"`
	MaxPageSize  int                  `mapstructure:"maxPageSize" yaml:"maxPageSize,omitempty"`

	PrimaryColumn string         `mapstructure:"primaryColumn" yaml:"primaryColumn,omitempty"`
	ViewURL       string         `mapstructure:"viewUrl" yaml:"viewUrl,omitempty"`
	EditURL       string         `mapstructure:"editUrl" yaml:"editUrl,omitempty"`
	DeleteURL     string         `mapstructure:"deleteUrl" yaml:"deleteUrl,omitempty"`
	Actions       []table.Action `mapstructure:"actions" yaml:"actions,omitempty"`
	HideActions   bool           `mapstructure:"hideActions" yaml:"hideActions,omitempty"`

	// Render maps column keys to a named renderer, MobileRender does the same
	// for the mobile layout. Keys match case-insensitively since viper
	// lowercases map keys.
	Render       map[string]string `mapstructure:"render" yaml:"render,omitempty"`
	MobileRender map[string]string `mapstructure:"mobileRender" yaml:"mobileRender,omitempty"`
}

func renderName(names map[string]string, key string) string {
	if name, ok := names[key]; ok {
		return name
	}
	return names[strings.ToLower(key)]
}

func (c *TableConfig) checkRenderKeys(field string, names map[string]string) error {
	for key := range names {
		found := false
		for _, col := range c.Columns {
			if strings.EqualFold(col.Key, key) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s key '%s' matches no column", field, key)
		}
	}
	return nil
}

// BoundColumns returns a copy of Columns with the configured renderers attached.
func (c *TableConfig) BoundColumns(renderers *table.Renderers) ([]table.Column, error) {
	columns := make([]table.Column, len(c.Columns))
	copy(columns, c.Columns)

	for idx := range columns {
		col := &columns[idx]
		render, err := renderers.Resolve(renderName(c.Render, col.Key))
		if err != nil {
			return nil, fmt.Errorf("column '%s': %w", col.Key, err)
		}
		mobileRender, err := renderers.Resolve(renderName(c.MobileRender, col.Key))
		if err != nil {
			return nil, fmt.Errorf("column '%s': %w", col.Key, err)
		}
		if render != nil {
			col.Render = render
		}
		if mobileRender != nil {
			col.MobileRender = mobileRender
		}
	}
	return columns, nil
}

func (c *TableConfig) RowActions() table.Actions {
	return table.Actions{
		ViewURL:   c.ViewURL,
		EditURL:   c.EditURL,
		DeleteURL: c.DeleteURL,
		Custom:    c.Actions,
		Hidden:    c.HideActions,
	}
}

var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

func (c *TableConfig) Validate() error {
	if c.Table == "" {
		return fmt.Errorf("table is required")
	}
	if !identifierRegex.MatchString(c.Table) {
		return fmt.Errorf("invalid table name '%s'", c.Table)
	}

	if _, err := table.ValidateColumns(c.Columns); err != nil {
		return err
	}

	for _, col := range c.Searchable {
		if !identifierRegex.MatchString(col) {
			return fmt.Errorf("invalid searchable column '%s'", col)
		}
	}

	seen := map[string]struct{}{}
	for idx, s := range c.Sortable {
		if s.Key == "" || s.Column == "" {
			return fmt.Errorf("sortable %d must have both 'key' and 'column'", idx)
		}
		if !s.Raw && !identifierRegex.MatchString(s.Column) {
			return fmt.Errorf("invalid sortable column '%s'", s.Column)
		}
		if _, ok := seen[s.Key]; ok {
			return fmt.Errorf("duplicate sortable key '%s'", s.Key)
		}
		seen[s.Key] = struct{}{}
	}

	if c.DefaultOrder != "" {
		if _, ok := pagination.ParseOrderType(string(c.DefaultOrder)); !ok {
			return fmt.Errorf("invalid default order '%s'", c.DefaultOrder)
		}
	}
	if c.PageSize < 0 || c.MaxPageSize < 0 {
		return fmt.Errorf("page sizes must not be negative")
	}

	if err := c.checkRenderKeys("render", c.Render); err != nil {
		return err
	}
	if err := c.checkRenderKeys("mobileRender", c.MobileRender); err != nil {
		return err
	}
	if _, err := c.BoundColumns(table.GetRenderers()); err != nil {
		return err
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Driver == "" {
		c.Driver = DriverSQLite
	}

	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			c.Path = "tablekit.db"
		}
	case DriverPostgres:
		if c.Host == "" {
			c.Host = "127.0.0.1"
		}
		if c.Port <= 0 || c.Port > 65535 {
			c.Port = 5432
		}
		if c.Username == "" {
			c.Username = "postgres"
		}
		if c.Password == "" {
			return fmt.Errorf("database password is required")
		}
		if c.Database == "" {
			c.Database = "tablekit"
		}
	default:
		return fmt.Errorf("unsupported database driver '%s'", c.Driver)
	}
	return nil
}

func (c *AppConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}

	if c.DB == nil {
		c.DB = &DatabaseConfig{}
	}
	if err := c.DB.Validate(); err != nil {
		return fmt.Errorf("invalid db config: %w", err)
	}

	for _, name := range c.TableNames() {
		tbl := c.Tables[name]
		if tbl == nil {
			return fmt.Errorf("table '%s' has no definition", name)
		}
		if err := tbl.Validate(); err != nil {
			return fmt.Errorf("invalid table '%s': %w", name, err)
		}
	}
	return nil
}

// TableNames returns the configured table names in sorted order
func (c *AppConfig) TableNames() []string {
	names := make([]string, 0, len(c.Tables))
	for name := range c.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
