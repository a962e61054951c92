package models

import "time"

// Category represents a product category as exposed by the catalog service.
// Schema matches the admin API contract.
type Category struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	ProductCount int        `json:"productCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// UpdateCategoryRequest is the payload for renaming a category
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
