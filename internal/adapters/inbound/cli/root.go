package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orderdesk",
		Short: "Interactive order entry at the counter",
		Long:  "OrderDesk builds customer orders interactively: pick a customer, add products with live stock validation, then confirm or abort the purchase.",

		SilenceUsage: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newOrderCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newCustomersCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
