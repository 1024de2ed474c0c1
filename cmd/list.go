package cmd

import (
	"fmt"

	"github.com/ethpandaops/benchreport/internal/actions"
	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available probes and their thresholds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		svc, err := actions.NewService(Logger, cfg)
		if err != nil {
			return err
		}

		actions.ListProbes(Logger, cmd.OutOrStdout(), svc)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
