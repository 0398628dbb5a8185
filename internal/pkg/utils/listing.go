package utils

import "strings"

// FilterBySubstring keeps the items whose search fields contain the query
// as a case-insensitive substring. An empty query keeps everything.
func FilterBySubstring[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// Paginate slices one page out of items. Page numbers start at 1; an
// out-of-range page yields an empty slice, never an error.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = len(items)
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
