// Package main is the entry point for the benchreport application
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethpandaops/benchreport/cmd"
	"github.com/joho/godotenv"
)

const (
	envFlag      = "--env"
	envFlagEqual = "--env="
)

func main() {
	envFile, runTUI, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !runTUI {
		// Arguments provided - cobra handles --env itself
		cmd.Execute()
		return
	}

	if err := loadEnvFile(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading env file: %v\n", err)
		os.Exit(1)
	}

	// Pick up LOG_LEVEL from the env file
	cmd.InitLogger()

	runInteractive()
}

// parseArgs extracts the env file and decides whether to run the TUI, which
// happens when nothing but --env was given.
func parseArgs(args []string) (envFile string, runTUI bool, err error) {
	rest := args[1:]

	switch {
	case len(rest) == 0:
		return "", true, nil
	case len(rest) == 1 && rest[0] == envFlag:
		return "", false, fmt.Errorf("%s flag requires a value", envFlag)
	case len(rest) == 1 && strings.HasPrefix(rest[0], envFlagEqual):
		return rest[0][len(envFlagEqual):], true, nil
	case len(rest) == 2 && rest[0] == envFlag:
		return rest[1], true, nil
	default:
		return "", false, nil
	}
}

// loadEnvFile loads the specified environment file
func loadEnvFile(file string) error {
	if file == "" {
		file = ".env"
	}

	if err := godotenv.Load(file); err != nil {
		// If it's the default .env file and it doesn't exist, that's okay
		if file == ".env" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}
