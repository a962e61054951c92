package models

import "time"

// Product represents a catalog product.
// CategoryID may reference a category that is not present in the current
// page of the category collection; display code must tolerate that.
type Product struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	CategoryID string     `json:"categoryId"`
	Price      float64    `json:"price"`
	Currency   string     `json:"currency,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// CreateProductRequest is the payload for creating a product
type CreateProductRequest struct {
	Name       string  `json:"name" validate:"required,max=200"`
	CategoryID string  `json:"categoryId" validate:"required"`
	Price      float64 `json:"price" validate:"required,gte=0.01"`
	Currency   string  `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
}

// UpdateProductRequest is the payload for updating a product
type UpdateProductRequest struct {
	Name       string  `json:"name" validate:"required,max=200"`
	CategoryID string  `json:"categoryId" validate:"required"`
	Price      float64 `json:"price" validate:"required,gte=0.01"`
	Currency   string  `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
}
