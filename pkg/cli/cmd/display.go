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

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/masteryyh/tablekit/pkg/models"
	"github.com/samber/lo"
	"golang.org/x/term"
)

// compactWidth is the terminal width below which the mobile layout is used.
const compactWidth = 80

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	primaryStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// terminalWidth returns the configured width, or the width of stdout when it
// is a terminal, or 0 when unknown.
func terminalWidth(configured int) int {
	if configured > 0 {
		return configured
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func useMobileLayout(compact bool, width int) bool {
	return compact || (width > 0 && width < compactWidth)
}

func visibleColumns(page *models.TablePageDto, mobile bool) []models.ColumnDto {
	if !mobile {
		return page.Columns
	}
	return lo.Filter(page.Columns, func(col models.ColumnDto, _ int) bool {
		return lo.Contains(page.MobileColumns, col.Key)
	})
}

func renderTablePage(page *models.TablePageDto, mobile bool, width int) string {
	columns := visibleColumns(page, mobile)
	primaryIdx := lo.IndexOf(lo.Map(columns, func(col models.ColumnDto, _ int) string {
		return col.Key
	}), page.PrimaryColumn)

	headers := lo.Map(columns, func(col models.ColumnDto, _ int) string {
		label := col.Label
		if mobile {
			label = col.MobileLabel
		}
		return label + col.SortIndicator
	})
	showActions := page.HasActions && !mobile
	if showActions {
		headers = append(headers, "Actions")
	}

	rows := lo.Map(page.Rows, func(row models.RowDto, _ int) []string {
		cells := row.Cells
		if mobile {
			cells = row.MobileCells
		}
		cells = append([]string{}, cells...)
		if showActions {
			cells = append(cells, strings.Join(lo.Map(row.Actions, func(a models.ActionDto, _ int) string {
				return a.Label
			}), ", "))
		}
		return cells
	})

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == primaryIdx:
				return primaryStyle
			default:
				return cellStyle
			}
		})
	if width > 0 {
		t = t.Width(width)
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(pageSummary(page)))
	b.WriteString("\n")
	return b.String()
}

func pageSummary(page *models.TablePageDto) string {
	info := page.Pagination

	var parts []string
	if page.ResultCount != nil {
		parts = append(parts, fmt.Sprintf("%d matches for %q", *page.ResultCount, page.Params.SearchTerm))
	}
	if info.TotalRecords == 0 {
		parts = append(parts, "No records")
	} else {
		parts = append(parts, fmt.Sprintf("Showing %d-%d of %d", info.StartRecord, info.EndRecord, info.TotalRecords))
	}
	parts = append(parts, fmt.Sprintf("Page %d/%d", info.CurrentPage, info.TotalPages))
	if page.NextURL != "" {
		parts = append(parts, "next: "+page.NextURL)
	}
	return strings.Join(parts, " · ")
}
