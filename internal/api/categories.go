package api

import (
	"context"
	"fmt"

	"github.com/catalogtools/catalog-admin/internal/models"
)

const categoriesEndpoint = "/api/Categories"

// ListCategories returns the full (unpaged) category collection
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return get[[]models.Category](ctx, c, categoriesEndpoint+"/GetAllCategories", nil)
}

// GetCategory returns a single category by id
func (c *Client) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	cat, err := get[models.Category](ctx, c, fmt.Sprintf("%s/GetCategoryById/%s", categoriesEndpoint, id), nil)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// CreateCategory creates a new category
func (c *Client) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	cat, err := post[models.Category](ctx, c, categoriesEndpoint+"/CreateCategory", req)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory renames an existing category
func (c *Client) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	cat, err := put[models.Category](ctx, c, fmt.Sprintf("%s/UpdateCategoryById/%s", categoriesEndpoint, id), req)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory deletes a category. Returns an error wrapping
// ErrReferentialIntegrity when products are still linked to it.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return del(ctx, c, fmt.Sprintf("%s/DeleteCategoryById/%s", categoriesEndpoint, id))
}
