package script

import (
	"strings"

	"github.com/lixenwraith/termcast/render"
)

// Filter returns the entries whose label contains query, case-insensitively, in original order
// An empty query returns a copy of the full list
func Filter(entries []render.Entry, query string) []render.Entry {
	if query == "" {
		out := make([]render.Entry, len(entries))
		copy(out, entries)
		return out
	}

	q := strings.ToLower(query)
	out := make([]render.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Label), q) {
			out = append(out, e)
		}
	}
	return out
}
