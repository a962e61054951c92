package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/catalogtools/catalog-admin/internal/listview"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show catalog summary counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := listview.LoadDashboardStats(cmd.Context(), a.client, a.client)
			if err != nil {
				a.notifier.Error("Error loading dashboard stats")
				return err
			}

			cards := lipgloss.JoinHorizontal(lipgloss.Top,
				renderCard("Categories", stats.CategoryCount, "Total Categories"),
				renderCard("Products", stats.ProductCount, "Total Products"),
			)

			fmt.Fprintln(a.out, cards)
			return nil
		},
	}
}
