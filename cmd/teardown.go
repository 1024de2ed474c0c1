package cmd

import (
	"fmt"

	"github.com/ethpandaops/benchreport/internal/actions"
	"github.com/spf13/cobra"
)

var (
	forceTeardown bool
)

var teardownCmd = &cobra.Command{
	Use:   "teardown",
	Short: "Drop the ClickHouse scratch table",
	Long: `Validates configuration and reverts the scratch schema migrations.
This command will:
- Validate your configuration
- Test the ClickHouse connection
- DROP the scratch table`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !forceTeardown {
			if err := actions.Teardown(cmd.Context(), Logger, cmd.OutOrStdout(), false); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Use --force flag to proceed with teardown")
			return nil
		}

		if err := actions.Teardown(cmd.Context(), Logger, cmd.OutOrStdout(), true); err != nil {
			return fmt.Errorf("teardown failed: %w", err)
		}
		return nil
	},
}

func init() {
	teardownCmd.Flags().BoolVarP(&forceTeardown, "force", "f", false, "Skip confirmation and proceed with teardown")
	rootCmd.AddCommand(teardownCmd)
}
