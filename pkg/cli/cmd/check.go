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
	"io"
	"strings"

	json "github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/masteryyh/tablekit/pkg/config"
	tablekit "github.com/masteryyh/tablekit/pkg/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

type tableReport struct {
	Name          string   `json:"name" yaml:"name"`
	Table         string   `json:"table" yaml:"table"`
	Columns       []string `json:"columns" yaml:"columns"`
	MobileColumns []string `json:"mobileColumns" yaml:"mobileColumns"`
	PrimaryColumn string   `json:"primaryColumn,omitempty" yaml:"primaryColumn,omitempty"`
	HasActions    bool     `json:"hasActions" yaml:"hasActions"`
	TotalColumns  int      `json:"totalColumns" yaml:"totalColumns"`
	SortKeys      []string `json:"sortKeys" yaml:"sortKeys"`
	Error         string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func columnKeys(columns []tablekit.Column) []string {
	return lo.Map(columns, func(col tablekit.Column, _ int) string {
		return col.Key
	})
}

// checkTables validates every configured table and describes the layout each one resolves to.
func checkTables(cfg *config.AppConfig, processor *tablekit.Processor) []tableReport {
	return lo.Map(cfg.TableNames(), func(name string, _ int) tableReport {
		tc := cfg.Tables[name]
		report := tableReport{Name: name}
		if tc == nil {
			report.Error = "table has no definition"
			return report
		}

		report.Table = tc.Table
		report.SortKeys = lo.Map(tc.Sortable, func(sc config.SortableConfig, _ int) string {
			return sc.Key
		})

		if err := tc.Validate(); err != nil {
			report.Error = err.Error()
			return report
		}
		columns, err := tc.BoundColumns(tablekit.GetRenderers())
		if err != nil {
			report.Error = err.Error()
			return report
		}
		processed, err := processor.Process(columns, tc.PrimaryColumn, tc.RowActions())
		if err != nil {
			report.Error = err.Error()
			return report
		}

		report.Columns = columnKeys(processed.AllColumns)
		report.MobileColumns = columnKeys(processed.MobileColumns)
		report.PrimaryColumn = processed.PrimaryColumn.Key
		report.HasActions = processed.HasActions
		report.TotalColumns = tablekit.TotalColumnCount(processed.AllColumns, processed.HasActions)
		return report
	})
}

func writeReports(w io.Writer, reports []tableReport, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(reports)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "table", "":
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(borderStyle).
			Headers("Name", "Table", "Columns", "Mobile", "Primary", "Sort keys", "Status").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if col == 6 && reports[row].Error != "" {
					return errorStyle.Padding(0, 1)
				}
				return cellStyle
			})
		for _, r := range reports {
			status := "ok"
			if r.Error != "" {
				status = r.Error
			}
			t.Row(r.Name, r.Table,
				strings.Join(r.Columns, ", "),
				strings.Join(r.MobileColumns, ", "),
				r.PrimaryColumn,
				strings.Join(r.SortKeys, ", "),
				status)
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configured tables",
	Long:  `Load the configuration, validate every table and show the columns it resolves to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cm := config.NewConfigManager()
		cm.BindEnvVariables()
		if err := cm.LoadConfig(configFiles()...); err != nil {
			return err
		}

		cfg := cm.GetConfig()
		if len(cfg.Tables) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No tables configured"))
			return nil
		}

		format, _ := cmd.Flags().GetString("output")
		reports := checkTables(cfg, tablekit.NewProcessor(nil))
		if err := writeReports(cmd.OutOrStdout(), reports, format); err != nil {
			return err
		}

		failed := lo.CountBy(reports, func(r tableReport) bool {
			return r.Error != ""
		})
		if failed > 0 {
			return fmt.Errorf("%d of %d tables are invalid", failed, len(reports))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("output", "o", "table", "output format: table, json or yaml")
	rootCmd.AddCommand(checkCmd)
}
