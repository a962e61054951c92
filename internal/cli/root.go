// Package cli wires the admin console commands: configuration and logger
// setup, the catalog API client, and the list-view controllers behind each
// screen-equivalent command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/catalogtools/catalog-admin/internal/api"
	"github.com/catalogtools/catalog-admin/internal/config"
	"github.com/catalogtools/catalog-admin/internal/listview"
	"github.com/catalogtools/catalog-admin/internal/validate"
	"github.com/catalogtools/catalog-admin/pkg/logger"
)

// app carries the shared dependencies of all commands. Everything is
// injected explicitly; there are no package-level singletons.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	client    *api.Client
	notifier  listview.Notifier
	validator *validate.FormValidator
	out       io.Writer
}

// Execute runs the root command
func Execute() error {
	a := &app{}
	return newRootCmd(a).Execute()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog-admin",
		Short:         "Admin console for the catalog service",
		Long:          "catalog-admin manages categories and products of the catalog service through its REST API.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env is optional; system environment takes over without one
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			a.cfg = cfg
			a.logger = logger.New(cfg.LogLevel)
			a.out = cmd.OutOrStdout()
			a.notifier = &consoleNotifier{out: a.out}
			a.validator = validate.New()

			client, err := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.Timeout)*time.Second, a.logger)
			if err != nil {
				return fmt.Errorf("create api client: %w", err)
			}
			a.client = client

			return nil
		},
	}

	root.AddCommand(
		newCategoriesCmd(a),
		newProductsCmd(a),
		newDashboardCmd(a),
	)

	return root
}

// parseSort converts command flags into a sort selection
func parseSort(key string, desc bool, allowed map[string]listview.SortKey) (listview.SortKey, listview.SortDirection, error) {
	sortKey, ok := allowed[key]
	if !ok {
		return "", listview.Ascending, fmt.Errorf("invalid sort key %q", key)
	}
	dir := listview.Ascending
	if desc {
		dir = listview.Descending
	}
	return sortKey, dir, nil
}
