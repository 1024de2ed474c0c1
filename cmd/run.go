package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ethpandaops/benchreport/internal/actions"
	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/ethpandaops/benchreport/internal/benchmark/selection"
	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/spf13/cobra"
)

var (
	runTests        []string
	runFormat       string
	runOutput       string
	runFailOnIssues bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark and print the report",
	Long: `Runs the selected probes one after another and prints the report.

Examples:
  benchreport run
  benchreport run --tests processor,memory
  benchreport run --format json --output report.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		svc, err := actions.NewService(Logger, cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		report, err := actions.RunBenchmark(ctx, Logger, cmd.OutOrStdout(), svc, actions.RunOptions{
			Tests:    selection.SplitIDs(runTests),
			Format:   runFormat,
			Output:   runOutput,
			Verbose:  verbose,
			ShareURL: cfg.ShareURL,
		})
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}

		if runFailOnIssues && report.Outcome == evaluation.OutcomeHasFailures {
			return fmt.Errorf("%d probe(s) exceeded their acceptable limit", report.Totals.Failed)
		}

		return nil
	},
}

func init() {
	runCmd.Flags().StringSliceVar(&runTests, "tests", nil, "Probe ids to run (default: all)")
	runCmd.Flags().StringVar(&runFormat, "format", actions.FormatTable, "Output format (table, json, csv)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Write json/csv output to this file instead of stdout")
	runCmd.Flags().BoolVar(&runFailOnIssues, "fail-on-issues", false, "Exit non-zero when any probe fails")
	rootCmd.AddCommand(runCmd)
}
