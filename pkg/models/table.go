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

package models

import (
	"github.com/masteryyh/tablekit/pkg/searchsort"
	"github.com/masteryyh/tablekit/pkg/utils/pagination"
)

type TableSummaryDto struct {
	Name       string   `json:"name"`
	Table      string   `json:"table"`
	Columns    int      `json:"columns"`
	Searchable bool     `json:"searchable"`
	SortKeys   []string `json:"sortKeys"`
}

type ColumnDto struct {
	Key           string `json:"key"`
	Label         string `json:"label"`
	MobileLabel   string `json:"mobileLabel"`
	ClassName     string `json:"className,omitempty"`
	HideOnMobile  bool   `json:"hideOnMobile"`
	Primary       bool   `json:"primary"`
	Sortable      bool   `json:"sortable"`
	Sorted        bool   `json:"sorted"`
	SortURL       string `json:"sortUrl,omitempty"`
	SortIndicator string `json:"sortIndicator,omitempty"`
}

type ActionDto struct {
	Label     string `json:"label"`
	URL       string `json:"url"`
	ClassName string `json:"className,omitempty"`
	Icon      string `json:"icon,omitempty"`
}

type RowDto struct {
	Cells       []string    `json:"cells"`
	MobileCells []string    `json:"mobileCells"`
	Actions     []ActionDto `json:"actions,omitempty"`
}

type PageLinkDto struct {
	Page    int    `json:"page"`
	URL     string `json:"url"`
	Current bool   `json:"current"`
}

// TablePageDto is everything needed to draw one page of a table.
type TablePageDto struct {
	Name          string            `json:"name"`
	Columns       []ColumnDto       `json:"columns"`
	MobileColumns []string          `json:"mobileColumns"`
	PrimaryColumn string            `json:"primaryColumn"`
	HasActions    bool              `json:"hasActions"`
	TotalColumns  int               `json:"totalColumns"`
	Rows          []RowDto          `json:"rows"`
	Params        searchsort.Params `json:"params"`
	Pagination    pagination.Info   `json:"pagination"`
	ResultCount   *int64            `json:"resultCount,omitempty"`
	PrevURL       string            `json:"prevUrl,omitempty"`
	NextURL       string            `json:"nextUrl,omitempty"`
	Pages         []PageLinkDto     `json:"pages"`
}
