package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/config"
	"github.com/orderdesk/orderdesk/internal/adapters/outbound/prompt"
	"github.com/orderdesk/orderdesk/internal/adapters/outbound/store"
	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

func newOrderCmd() *cobra.Command {
	var salesperson string

	cmd := &cobra.Command{
		Use:   "order [path]",
		Short: "Run an interactive order-entry session",
		Long:  "Select a customer, add products with live stock validation, then confirm or abort the purchase. The order commits to the data file only on final confirmation.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			if salesperson != "" {
				cfg.Salesperson = salesperson
			}

			svc := application.NewSessionService(
				store.New(resolveDataFile(dir, cfg)),
				prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
				tui.New(),
				cfg,
			)
			if err := svc.Run(); err != nil {
				return fmt.Errorf("session failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&salesperson, "salesperson", "", "Salesperson identity recorded on the order")

	return cmd
}

// loadConfig resolves the working directory argument and reads
// .orderdesk.yaml from it.
func loadConfig(args []string) (string, domain.SessionConfig, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", domain.SessionConfig{}, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.New().Load(absPath)
	if err != nil {
		return "", domain.SessionConfig{}, err
	}
	return absPath, cfg, nil
}

func resolveDataFile(dir string, cfg domain.SessionConfig) string {
	if filepath.IsAbs(cfg.DataFile) {
		return cfg.DataFile
	}
	return filepath.Join(dir, cfg.DataFile)
}
