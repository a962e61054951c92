package validate

import (
	"strings"
	"testing"

	"github.com/catalogtools/catalog-admin/internal/models"
)

func TestCreateCategory(t *testing.T) {
	fv := New()

	tests := []struct {
		name   string
		req    models.CreateCategoryRequest
		fields Fields
	}{
		{
			name:   "valid",
			req:    models.CreateCategoryRequest{Name: "Tools"},
			fields: Fields{},
		},
		{
			name:   "missing name",
			req:    models.CreateCategoryRequest{},
			fields: Fields{"name": KindRequired},
		},
		{
			name:   "name too long",
			req:    models.CreateCategoryRequest{Name: strings.Repeat("x", 101)},
			fields: Fields{"name": KindTooLong},
		},
		{
			name:   "name at limit",
			req:    models.CreateCategoryRequest{Name: strings.Repeat("x", 100)},
			fields: Fields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fv.CreateCategory(tt.req)
			assertFields(t, got, tt.fields)
		})
	}
}

func TestCreateProduct(t *testing.T) {
	fv := New()

	valid := models.CreateProductRequest{
		Name:       "Widget",
		CategoryID: "c1",
		Price:      9.99,
	}

	tests := []struct {
		name   string
		mutate func(*models.CreateProductRequest)
		fields Fields
	}{
		{
			name:   "valid without currency",
			mutate: func(*models.CreateProductRequest) {},
			fields: Fields{},
		},
		{
			name:   "valid with currency",
			mutate: func(r *models.CreateProductRequest) { r.Currency = "EUR" },
			fields: Fields{},
		},
		{
			name:   "missing name",
			mutate: func(r *models.CreateProductRequest) { r.Name = "" },
			fields: Fields{"name": KindRequired},
		},
		{
			name:   "name too long",
			mutate: func(r *models.CreateProductRequest) { r.Name = strings.Repeat("x", 201) },
			fields: Fields{"name": KindTooLong},
		},
		{
			name:   "missing category",
			mutate: func(r *models.CreateProductRequest) { r.CategoryID = "" },
			fields: Fields{"categoryId": KindRequired},
		},
		{
			name:   "zero price",
			mutate: func(r *models.CreateProductRequest) { r.Price = 0 },
			fields: Fields{"price": KindRequired},
		},
		{
			name:   "price below minimum",
			mutate: func(r *models.CreateProductRequest) { r.Price = 0.001 },
			fields: Fields{"price": KindTooSmall},
		},
		{
			name:   "bad currency length",
			mutate: func(r *models.CreateProductRequest) { r.Currency = "EURO" },
			fields: Fields{"currency": KindInvalid},
		},
		{
			name:   "numeric currency",
			mutate: func(r *models.CreateProductRequest) { r.Currency = "123" },
			fields: Fields{"currency": KindInvalid},
		},
		{
			name: "multiple failures",
			mutate: func(r *models.CreateProductRequest) {
				r.Name = ""
				r.CategoryID = ""
			},
			fields: Fields{"name": KindRequired, "categoryId": KindRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			got := fv.CreateProduct(req)
			assertFields(t, got, tt.fields)
		})
	}
}

func assertFields(t *testing.T, got, want Fields) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d field failures, got %d: %v", len(want), len(got), got)
	}
	for field, kind := range want {
		if got[field] != kind {
			t.Errorf("field %s: expected kind %s, got %s", field, kind, got[field])
		}
	}
}
