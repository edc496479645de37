package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/store"
	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [path]",
		Short: "List the product catalog with stock counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			products, err := store.New(resolveDataFile(dir, cfg)).LoadProducts()
			if err != nil {
				return fmt.Errorf("loading products: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.New().Catalog(products))
			return nil
		},
	}
}
