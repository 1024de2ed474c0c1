package cmd

import (
	"fmt"

	"github.com/ethpandaops/benchreport/internal/actions"
	"github.com/spf13/cobra"
)

var (
	forceSetup bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the ClickHouse scratch table used by the database probes",
	Long: `Validates configuration and prepares ClickHouse for the database probes.
This command will:
- Validate your configuration
- Test the ClickHouse connection
- Run the scratch schema migrations`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !forceSetup {
			if err := actions.Setup(cmd.Context(), Logger, cmd.OutOrStdout(), false); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nUse --force flag to proceed with setup")
			return nil
		}

		if err := actions.Setup(cmd.Context(), Logger, cmd.OutOrStdout(), true); err != nil {
			return fmt.Errorf("setup failed: %w", err)
		}
		return nil
	},
}

func init() {
	setupCmd.Flags().BoolVarP(&forceSetup, "force", "f", false, "Skip confirmation and proceed with setup")
	rootCmd.AddCommand(setupCmd)
}
