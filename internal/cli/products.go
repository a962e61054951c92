package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catalogtools/catalog-admin/internal/listview"
	"github.com/catalogtools/catalog-admin/internal/models"
)

var productSortKeys = map[string]listview.SortKey{
	"name":      listview.SortByName,
	"category":  listview.SortByCategory,
	"price":     listview.SortByPrice,
	"createdAt": listview.SortByCreated,
}

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage catalog products",
	}

	cmd.AddCommand(
		newProductsListCmd(a),
		newProductsGetCmd(a),
		newProductsByCategoryCmd(a),
		newProductsCreateCmd(a),
		newProductsUpdateCmd(a),
		newProductsDeleteCmd(a),
	)

	return cmd
}

func newProductsListCmd(a *app) *cobra.Command {
	var (
		filter   string
		category string
		sortBy   string
		desc     bool
		page     int
		size     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of products",
		Long: "List one page of products with resolved category names. " +
			"Filtering and sorting apply to the fetched page only, not the full collection.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, dir, err := parseSort(sortBy, desc, productSortKeys)
			if err != nil {
				return err
			}
			if size == 0 {
				size = a.cfg.PageSize
			}
			if page < 1 || size < 1 {
				return fmt.Errorf("page and size must be positive")
			}

			ctrl := listview.NewProductListController(a.client, a.client, a.client, a.notifier, a.logger)
			ctrl.SetFilter(filter)
			ctrl.SetCategoryFilter(category)
			ctrl.SetSort(key, dir)

			if err := ctrl.SetPage(cmd.Context(), page, size); err != nil {
				return err
			}

			rows := ctrl.Rows()
			out := make([][]string, 0, len(rows))
			for _, row := range rows {
				out = append(out, []string{
					row.ID,
					row.Name,
					row.CategoryName,
					formatPrice(row.Price, row.Currency),
					formatTime(row.CreatedAt),
				})
			}

			fmt.Fprintln(a.out, renderTable([]string{"ID", "Name", "Category", "Price", "Created"}, out))
			fmt.Fprintln(a.out, summaryStyle.Render(fmt.Sprintf(
				"Page %d of %d — %d products total",
				ctrl.State().PageNumber, ctrl.TotalPages(), ctrl.TotalCount(),
			)))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "case-insensitive filter on name and category")
	cmd.Flags().StringVar(&category, "category", "", "restrict to one category id (replaces --filter)")
	cmd.Flags().StringVar(&sortBy, "sort", "name", "sort key (name|category|price|createdAt)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(&size, "size", 0, "page size (default from configuration)")

	return cmd
}

func newProductsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			currency := p.Currency
			if currency == "" {
				currency = listview.DefaultCurrency
			}

			fmt.Fprintln(a.out, renderTable(
				[]string{"ID", "Name", "Category ID", "Price", "Created"},
				[][]string{{p.ID, p.Name, p.CategoryID, formatPrice(p.Price, currency), formatTime(p.CreatedAt)}},
			))
			return nil
		},
	}
}

func newProductsByCategoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "by-category <categoryId>",
		Short: "List all products in one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.client.ListProductsByCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := make([][]string, 0, len(products))
			for _, p := range products {
				currency := p.Currency
				if currency == "" {
					currency = listview.DefaultCurrency
				}
				out = append(out, []string{p.ID, p.Name, formatPrice(p.Price, currency), formatTime(p.CreatedAt)})
			}

			fmt.Fprintln(a.out, renderTable([]string{"ID", "Name", "Price", "Created"}, out))
			fmt.Fprintln(a.out, summaryStyle.Render(fmt.Sprintf("%d products", len(products))))
			return nil
		},
	}
}

func newProductsCreateCmd(a *app) *cobra.Command {
	var (
		name     string
		category string
		price    float64
		currency string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := models.CreateProductRequest{
				Name:       name,
				CategoryID: category,
				Price:      price,
				Currency:   currency,
			}
			if fields := a.validator.CreateProduct(req); len(fields) > 0 {
				return validationError(fields)
			}

			p, err := a.client.CreateProduct(cmd.Context(), req)
			if err != nil {
				a.notifier.Error("Error saving product")
				return err
			}

			a.notifier.Success(fmt.Sprintf("Product %q created (id %s)", p.Name, p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&category, "category", "", "category id (required)")
	cmd.Flags().Float64Var(&price, "price", 0, "price, minimum 0.01 (required)")
	cmd.Flags().StringVar(&currency, "currency", "", "3-letter currency code (optional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newProductsUpdateCmd(a *app) *cobra.Command {
	var (
		name     string
		category string
		price    float64
		currency string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.UpdateProductRequest{
				Name:       name,
				CategoryID: category,
				Price:      price,
				Currency:   currency,
			}
			if fields := a.validator.UpdateProduct(req); len(fields) > 0 {
				return validationError(fields)
			}

			p, err := a.client.UpdateProduct(cmd.Context(), args[0], req)
			if err != nil {
				a.notifier.Error("Error saving product")
				return err
			}

			a.notifier.Success(fmt.Sprintf("Product %s updated", p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&category, "category", "", "category id (required)")
	cmd.Flags().Float64Var(&price, "price", 0, "price, minimum 0.01 (required)")
	cmd.Flags().StringVar(&currency, "currency", "", "3-letter currency code (optional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newProductsDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			ctrl := listview.NewProductListController(a.client, a.client, a.client, a.notifier, a.logger)
			ctrl.RequestDelete(listview.Row{ID: p.ID, Name: p.Name})

			if !yes && !confirm(cmd, fmt.Sprintf("Delete %q?", p.Name)) {
				ctrl.CancelDelete()
				fmt.Fprintln(a.out, "Cancelled")
				return nil
			}

			switch ctrl.ConfirmDelete(cmd.Context()) {
			case listview.OutcomeSuccess:
				return nil
			case listview.OutcomeReferentialIntegrity:
				return fmt.Errorf("product %s is still referenced by other records", p.ID)
			default:
				return fmt.Errorf("delete product %s failed", p.ID)
			}
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")

	return cmd
}
