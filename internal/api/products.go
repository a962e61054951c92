package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/catalogtools/catalog-admin/internal/models"
)

const productsEndpoint = "/api/Products"

// ListProducts returns one page of the product collection.
// pageNumber is 1-based; violating the bounds is a programming error since
// the paginator only emits validated values.
func (c *Client) ListProducts(ctx context.Context, pageNumber, pageSize int) (*models.Page[models.Product], error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, fmt.Errorf("invalid page request: pageNumber=%d pageSize=%d", pageNumber, pageSize)
	}

	query := map[string]string{
		"pageNumber": strconv.Itoa(pageNumber),
		"pageSize":   strconv.Itoa(pageSize),
	}

	page, err := get[models.Page[models.Product]](ctx, c, productsEndpoint+"/GetAllProducts", query)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct returns a single product by id
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	p, err := get[models.Product](ctx, c, fmt.Sprintf("%s/GetProductBy/%s", productsEndpoint, id), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProductsByCategory returns all products belonging to one category
func (c *Client) ListProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return get[[]models.Product](ctx, c, fmt.Sprintf("%s/GetProductsByCategoryId/%s", productsEndpoint, categoryID), nil)
}

// CreateProduct creates a new product
func (c *Client) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	p, err := post[models.Product](ctx, c, productsEndpoint+"/CreateProduct", req)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct updates an existing product
func (c *Client) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	p, err := put[models.Product](ctx, c, fmt.Sprintf("%s/UpdateProductById/%s", productsEndpoint, id), req)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct deletes a product by id
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return del(ctx, c, fmt.Sprintf("%s/DeleteProductById/%s", productsEndpoint, id))
}
