package table

// DisplayLabel is the header text, mobile views prefer MobileLabel when set.
func (c Column) DisplayLabel(mobile bool) string {
	if mobile && c.MobileLabel != "" {
		return c.MobileLabel
	}
	return c.Label
}

// SortParam is the value put in the "sort" URL parameter for this column.
func (c Column) SortParam() string {
	if c.SortKey != "" {
		return c.SortKey
	}
	return c.Key
}

// RenderCell formats the column's value in row. Mobile views use MobileRender
// first, then Render, then the default formatting.
func (c Column) RenderCell(row map[string]any, mobile bool) string {
	value := row[c.Key]

	if mobile && c.MobileRender != nil {
		return c.MobileRender(value, row)
	}
	if c.Render != nil {
		return c.Render(value, row)
	}
	return stringify(value)
}

// RenderRow formats every column of row, in column order.
func RenderRow(columns []Column, row map[string]any, mobile bool) []string {
	cells := make([]string, len(columns))
	for idx, col := range columns {
		cells[idx] = col.RenderCell(row, mobile)
	}
	return cells
}
