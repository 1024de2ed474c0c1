package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethpandaops/benchreport/cmd"
	"github.com/ethpandaops/benchreport/internal/actions"
	"github.com/ethpandaops/benchreport/internal/benchmark"
	"github.com/ethpandaops/benchreport/internal/benchmark/output"
	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/ethpandaops/benchreport/pkg/interactive"
)

func runInteractive() {
	fmt.Println("benchreport - Interactive Mode")
	fmt.Println("==============================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "🏁 Run Benchmark",
				Description: "Select probes, run them and show the report",
				Action:      runBenchmarkFromMenu,
			},
			{
				Name:        "📋 List Probes",
				Description: "Show the probe catalog and thresholds",
				Action: func() error {
					_, svc, err := loadService()
					if err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					} else {
						actions.ListProbes(cmd.Logger, os.Stdout, svc)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
			{
				Name:        "🗄️  Scratch Schema",
				Description: "Setup or teardown the ClickHouse scratch table",
				Action:      showSchemaMenu,
			},
			{
				Name:        "⚙️  Show Config",
				Description: "Display current environment configuration",
				Action: func() error {
					if err := actions.ShowConfig(os.Stdout); err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
		}

		if err := interactive.ShowMainMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		fmt.Println()
	}
}

func loadService() (*config.AppConfig, benchmark.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	svc, err := actions.NewService(cmd.Logger, cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, svc, nil
}

func runBenchmarkFromMenu() error {
	cfg, svc, err := loadService()
	if err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
		interactive.PauseForEnter()
		return nil
	}

	bundle := svc.Strings()
	ids := svc.Catalog().IDs()

	output.NewFormatter(cmd.Logger, os.Stdout, false, bundle).PrintIntro()

	choices := make([]interactive.Choice, 0, len(ids))
	for _, id := range ids {
		choices = append(choices, interactive.Choice{Value: id, Label: bundle.ProbeName(id)})
	}

	selected, err := interactive.MultiSelect(bundle.String("selecttests"), choices)
	if err != nil {
		return nil
	}

	if len(selected) == 0 {
		fmt.Println("No probes selected.")
		interactive.PauseForEnter()
		return nil
	}

	if !interactive.Confirm(fmt.Sprintf("Run %d probe(s) now?", len(selected))) {
		fmt.Println("Benchmark canceled.")
		interactive.PauseForEnter()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := actions.RunBenchmark(ctx, cmd.Logger, os.Stdout, svc, actions.RunOptions{
		Tests:    selected,
		Format:   actions.FormatTable,
		ShareURL: cfg.ShareURL,
	}); err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
	}

	interactive.PauseForEnter()

	return nil
}

func showSchemaMenu() error {
	ctx := context.Background()

	options := []interactive.MenuOption{
		{
			Name:        "Setup",
			Description: "Create the scratch table (safe to run multiple times)",
			Action: func() error {
				return confirmThen(
					func(apply bool) error { return actions.Setup(ctx, cmd.Logger, os.Stdout, apply) },
					"Do you want to proceed with the setup?",
					"Setup canceled.",
				)
			},
		},
		{
			Name:        "Teardown",
			Description: "Drop the scratch table",
			Action: func() error {
				return confirmThen(
					func(apply bool) error { return actions.Teardown(ctx, cmd.Logger, os.Stdout, apply) },
					"⚠️  Are you SURE you want to drop the scratch table?",
					"Teardown canceled.",
				)
			},
		},
	}

	if err := interactive.ShowMainMenu(options); err != nil && !errors.Is(err, interactive.ErrExit) {
		return err
	}

	return nil
}

// confirmThen previews an action, asks for confirmation and applies it.
func confirmThen(action func(apply bool) error, question, canceled string) error {
	if err := action(false); err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
		interactive.PauseForEnter()
		return nil
	}

	if !interactive.Confirm(question) {
		fmt.Println(canceled)
		interactive.PauseForEnter()
		return nil
	}

	if err := action(true); err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
	}

	interactive.PauseForEnter()

	return nil
}
