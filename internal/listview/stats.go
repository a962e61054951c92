package listview

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/catalogtools/catalog-admin/internal/models"
)

// DashboardStats is the summary shown on the dashboard screen
type DashboardStats struct {
	CategoryCount int
	ProductCount  int
}

// LoadDashboardStats fetches the category collection and the first product
// page (size 1, just for its total count) concurrently. The first failure
// wins and no partial stats are returned.
func LoadDashboardStats(ctx context.Context, categories CategoryLister, products ProductPager) (*DashboardStats, error) {
	var (
		cats []models.Category
		page *models.Page[models.Product]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cs, err := categories.ListCategories(gctx)
		if err != nil {
			return err
		}
		cats = cs
		return nil
	})
	g.Go(func() error {
		p, err := products.ListProducts(gctx, 1, 1)
		if err != nil {
			return err
		}
		page = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardStats{
		CategoryCount: len(cats),
		ProductCount:  page.TotalCount,
	}, nil
}
