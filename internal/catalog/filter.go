// Package catalog holds the pure domain rules of the tool catalog: list
// filtering and aggregate rating math. It has no storage or HTTP concerns.
package catalog

import (
	"strings"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// FilterTools applies the catalog list filters, preserving input order.
// category is an exact case-insensitive match, skipped when empty or "all".
// search is a case-insensitive substring match against name OR description,
// skipped when empty. Both filters apply together.
func FilterTools(tools []store.Tool, category, search string) []store.Tool {
	out := make([]store.Tool, 0, len(tools))
	search = strings.ToLower(search)
	for _, tool := range tools {
		if category != "" && category != "all" &&
			!strings.EqualFold(string(tool.Category), category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(tool.Name), search) &&
			!strings.Contains(strings.ToLower(tool.Description), search) {
			continue
		}
		out = append(out, tool)
	}
	return out
}
