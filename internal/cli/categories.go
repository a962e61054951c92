package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/catalogtools/catalog-admin/internal/listview"
	"github.com/catalogtools/catalog-admin/internal/models"
)

var categorySortKeys = map[string]listview.SortKey{
	"name":      listview.SortByName,
	"createdAt": listview.SortByCreated,
}

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage catalog categories",
	}

	cmd.AddCommand(
		newCategoriesListCmd(a),
		newCategoriesGetCmd(a),
		newCategoriesCreateCmd(a),
		newCategoriesUpdateCmd(a),
		newCategoriesDeleteCmd(a),
	)

	return cmd
}

func newCategoriesListCmd(a *app) *cobra.Command {
	var (
		filter string
		sortBy string
		desc   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, dir, err := parseSort(sortBy, desc, categorySortKeys)
			if err != nil {
				return err
			}

			ctrl := listview.NewCategoryListController(a.client, a.client, a.notifier, a.logger)
			ctrl.SetFilter(filter)
			ctrl.SetSort(key, dir)

			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}

			rows := ctrl.Rows()
			out := make([][]string, 0, len(rows))
			for _, row := range rows {
				out = append(out, []string{
					row.ID,
					row.Name,
					strconv.Itoa(row.ProductCount),
					formatTime(row.CreatedAt),
				})
			}

			fmt.Fprintln(a.out, renderTable([]string{"ID", "Name", "Products", "Created"}, out))
			fmt.Fprintln(a.out, summaryStyle.Render(
				fmt.Sprintf("%d of %d categories shown", len(rows), ctrl.TotalCount()),
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "case-insensitive name filter")
	cmd.Flags().StringVar(&sortBy, "sort", "name", "sort key (name|createdAt)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")

	return cmd
}

func newCategoriesGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.client.GetCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, renderTable(
				[]string{"ID", "Name", "Products", "Created"},
				[][]string{{cat.ID, cat.Name, strconv.Itoa(cat.ProductCount), formatTime(cat.CreatedAt)}},
			))
			return nil
		},
	}
}

func newCategoriesCreateCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := models.CreateCategoryRequest{Name: name}
			if fields := a.validator.CreateCategory(req); len(fields) > 0 {
				return validationError(fields)
			}

			cat, err := a.client.CreateCategory(cmd.Context(), req)
			if err != nil {
				a.notifier.Error("Error saving category")
				return err
			}

			a.notifier.Success(fmt.Sprintf("Category %q created (id %s)", cat.Name, cat.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoriesUpdateCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.UpdateCategoryRequest{Name: name}
			if fields := a.validator.UpdateCategory(req); len(fields) > 0 {
				return validationError(fields)
			}

			cat, err := a.client.UpdateCategory(cmd.Context(), args[0], req)
			if err != nil {
				a.notifier.Error("Error saving category")
				return err
			}

			a.notifier.Success(fmt.Sprintf("Category %s renamed to %q", cat.ID, cat.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new category name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoriesDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.client.GetCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			ctrl := listview.NewCategoryListController(a.client, a.client, a.notifier, a.logger)
			ctrl.RequestDelete(listview.Row{ID: cat.ID, Name: cat.Name})

			if !yes && !confirm(cmd, fmt.Sprintf("Delete %q?", cat.Name)) {
				ctrl.CancelDelete()
				fmt.Fprintln(a.out, "Cancelled")
				return nil
			}

			switch ctrl.ConfirmDelete(cmd.Context()) {
			case listview.OutcomeSuccess:
				return nil
			case listview.OutcomeReferentialIntegrity:
				return fmt.Errorf("category %s still has linked products", cat.ID)
			default:
				return fmt.Errorf("delete category %s failed", cat.ID)
			}
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")

	return cmd
}

// confirm asks a yes/no question on the command's input stream
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// validationError folds field failures into one actionable error
func validationError(fields map[string]string) error {
	parts := make([]string, 0, len(fields))
	for field, kind := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, kind))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, ", "))
}
