package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ethpandaops/benchreport/internal/actions"
	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/ethpandaops/benchreport/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve benchmark reports over HTTP",
	Long: `Starts an HTTP server exposing:
  GET  /healthz
  GET  /api/tests
  GET  /api/report?tests=processor&tests=memory
  POST /api/report`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if serveAddr != "" {
			cfg.ListenAddr = serveAddr
		}

		svc, err := actions.NewService(Logger, cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.New(Logger, cfg.ListenAddr, svc, cfg.ReportsPerMinute).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides LISTEN_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
