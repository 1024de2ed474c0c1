package actions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/ethpandaops/benchreport/internal/clickhouse"
	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/ethpandaops/benchreport/internal/migrations"
	"github.com/sirupsen/logrus"
)

// ErrClickHouseURLNotSet is returned when the database probes have no target.
var ErrClickHouseURLNotSet = errors.New("CLICKHOUSE_URL is not set")

// Setup creates the scratch schema used by the database probes. Without
// skipConfirm it only prints the target so the caller can ask for confirmation.
func Setup(ctx context.Context, log logrus.FieldLogger, w io.Writer, skipConfirm bool) error {
	cfg, err := loadScratchTarget(w, "Setup")
	if err != nil {
		return err
	}

	if !skipConfirm {
		_, _ = fmt.Fprintf(w, "This will create the %s table if it doesn't exist.\n", config.ScratchTable)
		return nil
	}

	return withScratchDB(ctx, log, w, cfg, func(runner migrations.Runner, db scratchDB) error {
		_, _ = fmt.Fprintln(w, "Running migrations...")
		if err := runner.Up(ctx, db.conn, db.name); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		version, dirty, err := runner.Version(db.conn, db.name)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Debug("Scratch schema version")
		_, _ = fmt.Fprintf(w, "Setup completed successfully (schema version %d)\n", version)

		return nil
	})
}

// Teardown removes the scratch schema. Without skipConfirm it only prints
// the target so the caller can ask for confirmation.
func Teardown(ctx context.Context, log logrus.FieldLogger, w io.Writer, skipConfirm bool) error {
	cfg, err := loadScratchTarget(w, "Teardown")
	if err != nil {
		return err
	}

	if !skipConfirm {
		_, _ = fmt.Fprintf(w, "WARNING: This will drop the %s table!\n", config.ScratchTable)
		return nil
	}

	return withScratchDB(ctx, log, w, cfg, func(runner migrations.Runner, db scratchDB) error {
		if err := clickhouse.NewHostGuard(log, cfg.SafeHostnames).Check(ctx, db.conn); err != nil {
			return err
		}

		if err := runner.Down(ctx, db.conn, db.name); err != nil {
			return fmt.Errorf("failed to revert migrations: %w", err)
		}

		_, _ = fmt.Fprintln(w, "Teardown completed successfully")

		return nil
	})
}

type scratchDB struct {
	conn *sql.DB
	name string
}

func loadScratchTarget(w io.Writer, title string) (*config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.ClickHouseURL == "" {
		return nil, ErrClickHouseURLNotSet
	}

	_, _ = fmt.Fprintf(w, "\n%s Configuration:\n", title)
	_, _ = fmt.Fprintln(w, "======================")
	_, _ = fmt.Fprintf(w, "ClickHouse URL: %s\n", config.MaskURL(cfg.ClickHouseURL))
	_, _ = fmt.Fprintf(w, "Scratch Table:  %s\n\n", config.ScratchTable)

	return cfg, nil
}

func withScratchDB(
	ctx context.Context,
	log logrus.FieldLogger,
	w io.Writer,
	cfg *config.AppConfig,
	fn func(migrations.Runner, scratchDB) error,
) error {
	_, _ = fmt.Fprintln(w, "Testing ClickHouse connection...")

	conn, err := clickhouse.Connect(ctx, cfg.ClickHouseURL)
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	_ = conn.Close()

	_, _ = fmt.Fprintln(w, "Connection successful!")

	db, dbName, err := clickhouse.OpenDB(cfg.ClickHouseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.WithError(cerr).Warn("failed to close connection")
		}
	}()

	return fn(migrations.NewRunner(log), scratchDB{conn: db, name: dbName})
}
