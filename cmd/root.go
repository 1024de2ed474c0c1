// Package cmd implements the benchreport command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for all commands
	Logger *logrus.Logger

	envFile string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "benchreport",
		Short: "benchreport - host performance benchmark",
		Long: `benchreport runs a fixed set of timed probes against this host and its
backing services, compares each against an acceptable limit and prints a
report with remediation tips for whatever was too slow.

Run without arguments to launch interactive mode, or use subcommands for direct operations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if envFile != "" {
				if err := godotenv.Overload(envFile); err != nil {
					return fmt.Errorf("failed to load env file '%s': %w", envFile, err)
				}
			}

			InitLogger()

			if verbose {
				Logger.SetLevel(logrus.DebugLevel)
			}

			return nil
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Environment file to load (default .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Load .env file if it exists
	_ = godotenv.Load()

	InitLogger()
}
