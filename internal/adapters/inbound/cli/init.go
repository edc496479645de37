package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/store"
	"github.com/orderdesk/orderdesk/internal/domain"
)

const configFileName = ".orderdesk.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate .orderdesk.yaml and a seeded data file",
		Long:  "Create a .orderdesk.yaml with defaults and a data file seeded with starter customers and products.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			cfg := domain.DefaultSessionConfig()
			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			dataFile := resolveDataFile(absPath, cfg)
			if err := store.New(dataFile).Init(force); err != nil {
				return fmt.Errorf("seeding data file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s\n", cfg.DataFile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config and data files")

	return cmd
}

func generateConfig(cfg domain.SessionConfig) string {
	return fmt.Sprintf(`# OrderDesk configuration

salesperson: %s
data_file: %s

# Bound every retry loop (customer lookup, product lookup, quantity,
# yes/no). 0 keeps the loops unbounded.
max_attempts: %d
`, cfg.Salesperson, cfg.DataFile, cfg.MaxAttempts)
}
