package listview

import (
	"sort"
	"strings"
)

// Derive computes the visible, ordered subset of a row set from the given
// view state. It returns a fresh slice on every call and never mutates its
// input; filter and sort changes are frequent and page-sized inputs make
// recomputation cheap.
//
// Filtering applies to the current page only. It does not query the server
// and has no effect on the page's total count; rows filtered out here are
// still counted in pagination metadata. When a category restriction is
// active it replaces the free-text predicate entirely.
func Derive(rows RowSet, state ViewState) RowSet {
	out := make(RowSet, 0, len(rows))

	switch {
	case state.CategoryID != "":
		for _, row := range rows {
			if row.CategoryID == state.CategoryID {
				out = append(out, row)
			}
		}
	case strings.TrimSpace(state.FilterText) != "":
		needle := strings.ToLower(strings.TrimSpace(state.FilterText))
		for _, row := range rows {
			if matchesText(row, needle) {
				out = append(out, row)
			}
		}
	default:
		out = append(out, rows...)
	}

	// Stable so that rows with equal sort keys keep their prior relative order
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], state.SortKey, state.SortDirection)
	})

	return out
}

// matchesText reports whether the needle occurs in one of the row's
// designated text fields
func matchesText(row Row, needle string) bool {
	if strings.Contains(strings.ToLower(row.Name), needle) {
		return true
	}
	return row.CategoryName != "" && strings.Contains(strings.ToLower(row.CategoryName), needle)
}

func less(a, b Row, key SortKey, dir SortDirection) bool {
	if dir == Descending {
		a, b = b, a
	}

	switch key {
	case SortByCategory:
		return strings.ToLower(a.CategoryName) < strings.ToLower(b.CategoryName)
	case SortByPrice:
		return a.Price < b.Price
	case SortByCreated:
		return a.CreatedAt.Before(b.CreatedAt)
	default:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
}
