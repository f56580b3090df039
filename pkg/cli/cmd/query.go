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
	"strconv"

	json "github.com/bytedance/sonic"
	"github.com/masteryyh/tablekit/pkg/searchsort"
	"github.com/spf13/cobra"
)

// buildQuery starts from raw and overrides the parameters given as flags,
// keeping the parameter order of raw.
func buildQuery(cmd *cobra.Command, raw string) string {
	query := searchsort.ParseQuery(raw)

	if cmd.Flags().Changed("search") {
		search, _ := cmd.Flags().GetString("search")
		query.Set(searchsort.ParamSearch, search)
	}
	if cmd.Flags().Changed("sort") {
		sortBy, _ := cmd.Flags().GetString("sort")
		query.Set(searchsort.ParamSort, sortBy)
	}
	if cmd.Flags().Changed("order") {
		order, _ := cmd.Flags().GetString("order")
		query.Set(searchsort.ParamOrder, order)
	}
	if cmd.Flags().Changed("page") {
		page, _ := cmd.Flags().GetInt("page")
		query.Set(searchsort.ParamPage, strconv.Itoa(page))
	}
	if cmd.Flags().Changed("page-size") {
		pageSize, _ := cmd.Flags().GetInt("page-size")
		query.Set(searchsort.ParamPageSize, strconv.Itoa(pageSize))
	}
	return query.Encode()
}

var queryCmd = &cobra.Command{
	Use:   "query <table> [query-string]",
	Short: "Show one page of a table",
	Long: `Fetch a page of a table from a running server and render it.

The optional query string takes the same parameters as the HTTP API, for
example "search=bell&sort=name&order=desc". Flags override it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := ""
		if len(args) == 2 {
			raw = args[1]
		}

		page, err := GetClient().GetTablePage(args[0], buildQuery(cmd, raw))
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := json.MarshalIndent(page, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal table page: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		compact, _ := cmd.Flags().GetBool("compact")
		width := terminalWidth(GetCLIConfig().Width)
		fmt.Fprint(cmd.OutOrStdout(), renderTablePage(page, useMobileLayout(compact, width), width))
		return nil
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables served by a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		result, err := GetClient().ListTables(page, pageSize)
		if err != nil {
			return err
		}
		if len(result.Data) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No tables found"))
			return nil
		}

		for _, t := range result.Data {
			search := "no search"
			if t.Searchable {
				search = "searchable"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d columns\t%s\n", headerStyle.Render(t.Name), t.Table, t.Columns, search)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringP("search", "s", "", "search term")
	queryCmd.Flags().String("sort", "", "sort key")
	queryCmd.Flags().String("order", "", "sort order, asc or desc")
	queryCmd.Flags().Int("page", 1, "page number")
	queryCmd.Flags().Int("page-size", 0, "rows per page")
	queryCmd.Flags().Bool("compact", false, "use the mobile layout")
	queryCmd.Flags().Bool("json", false, "print the raw page as JSON")
	rootCmd.AddCommand(queryCmd)

	tablesCmd.Flags().Int("page", 1, "page number")
	tablesCmd.Flags().Int("page-size", 20, "tables per page")
	rootCmd.AddCommand(tablesCmd)
}
