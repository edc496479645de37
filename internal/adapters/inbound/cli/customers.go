package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/store"
	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
)

func newCustomersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "customers [path]",
		Short: "List the known customers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			customers, err := store.New(resolveDataFile(dir, cfg)).LoadCustomers()
			if err != nil {
				return fmt.Errorf("loading customers: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.New().Customers(customers))
			return nil
		},
	}
}
