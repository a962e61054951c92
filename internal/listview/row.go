package listview

import (
	"time"

	"github.com/catalogtools/catalog-admin/internal/models"
)

const (
	// UnknownCategory is the display label for a product whose categoryId
	// has no entry in the category index. Lookup misses must never abort
	// rendering.
	UnknownCategory = "Unknown"

	// DefaultCurrency is shown when a product carries no currency code
	DefaultCurrency = "USD"
)

// Row is a page item annotated with resolved display fields.
// Category rows leave the product-only fields zeroed.
type Row struct {
	ID           string
	Name         string
	CategoryID   string
	CategoryName string
	Price        float64
	Currency     string
	ProductCount int
	CreatedAt    time.Time
}

// RowSet is the annotated form of one page's items
type RowSet []Row

// CategoryIndex maps category id to category name for foreign-key display
// resolution. Built once per load from the full category fetch.
type CategoryIndex map[string]string

// NewCategoryIndex builds a lookup table from the full category collection
func NewCategoryIndex(categories []models.Category) CategoryIndex {
	index := make(CategoryIndex, len(categories))
	for _, cat := range categories {
		index[cat.ID] = cat.Name
	}
	return index
}

// Name resolves a category id to its display name, falling back to
// UnknownCategory for ids absent from the index
func (ci CategoryIndex) Name(id string) string {
	if name, ok := ci[id]; ok {
		return name
	}
	return UnknownCategory
}

// BuildProductRows annotates product page items with resolved category
// names and display currency. Pure: inputs are never mutated and the same
// inputs always yield the same rows.
func BuildProductRows(items []models.Product, index CategoryIndex) RowSet {
	rows := make(RowSet, 0, len(items))
	for _, p := range items {
		currency := p.Currency
		if currency == "" {
			currency = DefaultCurrency
		}
		rows = append(rows, Row{
			ID:           p.ID,
			Name:         p.Name,
			CategoryID:   p.CategoryID,
			CategoryName: index.Name(p.CategoryID),
			Price:        p.Price,
			Currency:     currency,
			CreatedAt:    p.CreatedAt,
		})
	}
	return rows
}

// BuildCategoryRows converts categories into display rows
func BuildCategoryRows(items []models.Category) RowSet {
	rows := make(RowSet, 0, len(items))
	for _, cat := range items {
		rows = append(rows, Row{
			ID:           cat.ID,
			Name:         cat.Name,
			ProductCount: cat.ProductCount,
			CreatedAt:    cat.CreatedAt,
		})
	}
	return rows
}
