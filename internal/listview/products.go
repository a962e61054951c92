package listview

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/catalogtools/catalog-admin/internal/api"
	"github.com/catalogtools/catalog-admin/internal/models"
)

// ProductPager fetches one page of the product collection
type ProductPager interface {
	ListProducts(ctx context.Context, pageNumber, pageSize int) (*models.Page[models.Product], error)
}

// CategoryLister fetches the full category collection
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// ProductDeleter deletes a single product
type ProductDeleter interface {
	DeleteProduct(ctx context.Context, id string) error
}

// ProductListController drives the products screen: it fetches one page of
// products together with the full category set, resolves category display
// names, and derives the visible rows from the screen's view state.
// A controller belongs to exactly one screen instance and shares no state
// with other screens.
type ProductListController struct {
	products   ProductPager
	categories CategoryLister
	deleter    ProductDeleter
	notifier   Notifier
	logger     *slog.Logger

	state   ViewState
	loading bool
	page    *models.Page[models.Product]
	index   CategoryIndex
	rows    RowSet
	delete  deleteFlow
}

// NewProductListController creates a controller with default view state
func NewProductListController(
	products ProductPager,
	categories CategoryLister,
	deleter ProductDeleter,
	notifier Notifier,
	logger *slog.Logger,
) *ProductListController {
	return &ProductListController{
		products:   products,
		categories: categories,
		deleter:    deleter,
		notifier:   notifier,
		logger:     logger,
		state:      NewViewState(),
	}
}

// Load fetches the current page and the category set concurrently.
// Both requests must resolve for the screen state to change: if either
// fails, the previously displayed state is left untouched and the failure
// is reported. Overlapping loads are not cancelled or de-duplicated; each
// applies its snapshot atomically and the last one to complete wins.
func (c *ProductListController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	var (
		page       *models.Page[models.Product]
		categories []models.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.products.ListProducts(gctx, c.state.PageNumber, c.state.PageSize)
		if err != nil {
			return err
		}
		page = p
		return nil
	})
	g.Go(func() error {
		cats, err := c.categories.ListCategories(gctx)
		if err != nil {
			return err
		}
		categories = cats
		return nil
	})

	if err := g.Wait(); err != nil {
		c.logger.Error("failed to load products", "error", err)
		c.notifier.Error("Error loading products")
		return err
	}

	c.page = page
	c.index = NewCategoryIndex(categories)
	c.rows = BuildProductRows(page.Items, c.index)
	return nil
}

// Rows derives the visible, ordered rows from the last loaded page
func (c *ProductListController) Rows() RowSet {
	return Derive(c.rows, c.state)
}

// Loading reports whether a load is in flight
func (c *ProductListController) Loading() bool {
	return c.loading
}

// State returns the screen's current view state
func (c *ProductListController) State() ViewState {
	return c.state
}

// TotalCount returns the collection-wide product count from the last page.
// Client-side filtering never changes it.
func (c *ProductListController) TotalCount() int {
	if c.page == nil {
		return 0
	}
	return c.page.TotalCount
}

// TotalPages returns the page count for the current page size
func (c *ProductListController) TotalPages() int {
	if c.page == nil {
		return 0
	}
	return c.page.TotalPages()
}

// SetFilter updates the free-text filter; derivation happens on Rows
func (c *ProductListController) SetFilter(text string) {
	c.state.FilterText = text
}

// SetCategoryFilter restricts rows to one category, replacing the text
// predicate. An empty id clears the restriction.
func (c *ProductListController) SetCategoryFilter(categoryID string) {
	c.state.CategoryID = categoryID
}

// SetSort updates the sort key and direction
func (c *ProductListController) SetSort(key SortKey, dir SortDirection) {
	c.state.SortKey = key
	c.state.SortDirection = dir
}

// SetPage moves to another page and re-fetches
func (c *ProductListController) SetPage(ctx context.Context, pageNumber, pageSize int) error {
	c.state.PageNumber = pageNumber
	c.state.PageSize = pageSize
	return c.Load(ctx)
}

// RequestDelete arms the delete flow for the given row
func (c *ProductListController) RequestDelete(row Row) {
	c.delete.request(row)
}

// CancelDelete disarms a pending delete
func (c *ProductListController) CancelDelete() {
	c.delete.cancel()
}

// PendingDelete returns the row awaiting confirmation, if any
func (c *ProductListController) PendingDelete() (Row, bool) {
	if c.delete.state != DeleteConfirmPending {
		return Row{}, false
	}
	return c.delete.target, true
}

// ConfirmDelete executes the pending delete. On success the current page
// is re-fetched exactly once with unchanged pagination, since the removed
// row may shift page boundaries. On failure the row set is left unchanged.
func (c *ProductListController) ConfirmDelete(ctx context.Context) Outcome {
	row, ok := c.delete.take()
	if !ok {
		return OutcomeNone
	}

	if err := c.deleter.DeleteProduct(ctx, row.ID); err != nil {
		c.logger.Error("failed to delete product", "id", row.ID, "error", err)
		if errors.Is(err, api.ErrReferentialIntegrity) {
			c.notifier.Error("Cannot delete product: other records are still linked to it")
			return OutcomeReferentialIntegrity
		}
		c.notifier.Error("Error deleting product")
		return OutcomeError
	}

	c.notifier.Success("Product deleted successfully")
	if err := c.Load(ctx); err != nil {
		// Delete succeeded; the reload failure was already reported by Load
		return OutcomeSuccess
	}
	return OutcomeSuccess
}
