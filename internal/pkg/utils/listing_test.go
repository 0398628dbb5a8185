package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type listItem struct {
	Name string
	City string
}

func (i listItem) fields() []string { return []string{i.Name, i.City} }

func TestFilterBySubstring(t *testing.T) {
	items := []listItem{
		{Name: "Jane Doe", City: "Lahore"},
		{Name: "John Roe", City: "Karachi"},
		{Name: "Mary Major", City: "Lahore"},
	}

	t.Run("empty query keeps everything", func(t *testing.T) {
		assert.Len(t, FilterBySubstring(items, "  ", listItem.fields), 3)
	})

	t.Run("matches any field case-insensitively", func(t *testing.T) {
		filtered := FilterBySubstring(items, "LAHORE", listItem.fields)
		assert.Len(t, filtered, 2)

		filtered = FilterBySubstring(items, "roe", listItem.fields)
		assert.Len(t, filtered, 1)
		assert.Equal(t, "John Roe", filtered[0].Name)
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, FilterBySubstring(items, "zurich", listItem.fields))
	})
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("slices one page", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
		assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
		assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	})

	t.Run("out of range page is empty", func(t *testing.T) {
		assert.Empty(t, Paginate(items, 4, 2))
	})

	t.Run("page below one is treated as the first", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, Paginate(items, 0, 2))
	})

	t.Run("non-positive page size keeps everything", func(t *testing.T) {
		assert.Equal(t, items, Paginate(items, 1, 0))
	})
}
