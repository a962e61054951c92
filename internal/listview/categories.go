package listview

import (
	"context"
	"errors"
	"log/slog"

	"github.com/catalogtools/catalog-admin/internal/api"
)

// CategoryDeleter deletes a single category
type CategoryDeleter interface {
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryListController drives the categories screen. The category
// collection is small enough that the service exposes it unpaged, so the
// controller holds the whole set and derives the visible rows locally.
type CategoryListController struct {
	categories CategoryLister
	deleter    CategoryDeleter
	notifier   Notifier
	logger     *slog.Logger

	state   ViewState
	loading bool
	rows    RowSet
	delete  deleteFlow
}

// NewCategoryListController creates a controller with default view state
func NewCategoryListController(
	categories CategoryLister,
	deleter CategoryDeleter,
	notifier Notifier,
	logger *slog.Logger,
) *CategoryListController {
	return &CategoryListController{
		categories: categories,
		deleter:    deleter,
		notifier:   notifier,
		logger:     logger,
		state:      NewViewState(),
	}
}

// Load fetches the full category collection. On failure the previously
// displayed rows are left untouched.
func (c *CategoryListController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	cats, err := c.categories.ListCategories(ctx)
	if err != nil {
		c.logger.Error("failed to load categories", "error", err)
		c.notifier.Error("Error loading categories")
		return err
	}

	c.rows = BuildCategoryRows(cats)
	return nil
}

// Rows derives the visible, ordered rows
func (c *CategoryListController) Rows() RowSet {
	return Derive(c.rows, c.state)
}

// Loading reports whether a load is in flight
func (c *CategoryListController) Loading() bool {
	return c.loading
}

// State returns the screen's current view state
func (c *CategoryListController) State() ViewState {
	return c.state
}

// TotalCount returns the number of loaded categories
func (c *CategoryListController) TotalCount() int {
	return len(c.rows)
}

// SetFilter updates the free-text filter
func (c *CategoryListController) SetFilter(text string) {
	c.state.FilterText = text
}

// SetSort updates the sort key and direction
func (c *CategoryListController) SetSort(key SortKey, dir SortDirection) {
	c.state.SortKey = key
	c.state.SortDirection = dir
}

// RequestDelete arms the delete flow for the given row
func (c *CategoryListController) RequestDelete(row Row) {
	c.delete.request(row)
}

// CancelDelete disarms a pending delete
func (c *CategoryListController) CancelDelete() {
	c.delete.cancel()
}

// PendingDelete returns the row awaiting confirmation, if any
func (c *CategoryListController) PendingDelete() (Row, bool) {
	if c.delete.state != DeleteConfirmPending {
		return Row{}, false
	}
	return c.delete.target, true
}

// ConfirmDelete executes the pending delete. A category with linked
// products is rejected by the service; that case gets its own message
// rather than the generic failure one. On success the list is re-fetched
// exactly once.
func (c *CategoryListController) ConfirmDelete(ctx context.Context) Outcome {
	row, ok := c.delete.take()
	if !ok {
		return OutcomeNone
	}

	if err := c.deleter.DeleteCategory(ctx, row.ID); err != nil {
		c.logger.Error("failed to delete category", "id", row.ID, "error", err)
		if errors.Is(err, api.ErrReferentialIntegrity) {
			c.notifier.Error("Cannot delete category: products are still linked to it")
			return OutcomeReferentialIntegrity
		}
		c.notifier.Error("Error deleting category")
		return OutcomeError
	}

	c.notifier.Success("Category deleted successfully")
	if err := c.Load(ctx); err != nil {
		return OutcomeSuccess
	}
	return OutcomeSuccess
}
