package views

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter keeps the items whose text contains term, ignoring case. An empty
// term keeps everything.
func Filter[T any](items []T, term string, text func(T) string) []T {
	if term == "" {
		return items
	}
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(text(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}
