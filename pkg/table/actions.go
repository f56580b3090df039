package table

import (
	"net/url"
	"regexp"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// ExpandURL substitutes {key} placeholders with path-escaped values from row.
// Unknown keys expand to an empty string.
func ExpandURL(template string, row map[string]any) string {
	if !strings.Contains(template, "{") {
		return template
	}
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		return url.PathEscape(stringify(row[key]))
	})
}

// ForRow returns the actions to show for row, built-in ones first. Nothing is
// returned when the actions are hidden.
func (a Actions) ForRow(row map[string]any) []Action {
	if !ShouldShowActions(a) {
		return nil
	}

	var result []Action
	if a.ViewURL != "" {
		result = append(result, Action{Label: "View", URL: ExpandURL(a.ViewURL, row)})
	}
	if a.EditURL != "" {
		result = append(result, Action{Label: "Edit", URL: ExpandURL(a.EditURL, row)})
	}
	if a.DeleteURL != "" {
		result = append(result, Action{Label: "Delete", URL: ExpandURL(a.DeleteURL, row), ClassName: "danger"})
	}
	for _, custom := range a.Custom {
		custom.URL = ExpandURL(custom.URL, row)
		result = append(result, custom)
	}
	return result
}
