// Package migrations manages the scratch schema used by the database probes
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/clickhouse"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var embedded embed.FS

// Runner applies the embedded migrations to a ClickHouse database.
type Runner interface {
	// Up applies all pending migrations.
	Up(ctx context.Context, conn *sql.DB, dbName string) error
	// Down reverts every applied migration.
	Down(ctx context.Context, conn *sql.DB, dbName string) error
	// Version returns the applied version and dirty flag. A database without
	// migrations reports version 0.
	Version(conn *sql.DB, dbName string) (version uint, dirty bool, err error)
}

type runner struct {
	log logrus.FieldLogger
}

// Compile-time interface compliance check
var _ Runner = (*runner)(nil)

// NewRunner creates a Runner over the embedded migration files.
func NewRunner(log logrus.FieldLogger) Runner {
	return &runner{
		log: log.WithField("component", "migrations"),
	}
}

// Files returns the names of the embedded migration files.
func Files() ([]string, error) {
	return fs.Glob(embedded, "sql/*.sql")
}

func (r *runner) Up(ctx context.Context, conn *sql.DB, dbName string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	m, err := r.instance(conn, dbName)
	if err != nil {
		return err
	}

	r.log.WithField("database", dbName).Debug("running migrations, please wait")

	done := make(chan error, 1)
	go func() {
		done <- m.Up()
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("migration canceled: %w", ctx.Err())
	case upErr := <-done:
		if errors.Is(upErr, migrate.ErrNoChange) {
			r.log.WithField("database", dbName).Info("No new migrations to apply")
			return nil
		}

		if upErr != nil {
			return fmt.Errorf("running migrations: %w", upErr)
		}
	}

	r.log.WithField("database", dbName).Info("Migrations applied successfully")

	return nil
}

func (r *runner) Down(ctx context.Context, conn *sql.DB, dbName string) error {
	m, err := r.instance(conn, dbName)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- m.Down()
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("migration canceled: %w", ctx.Err())
	case downErr := <-done:
		if downErr != nil && !errors.Is(downErr, migrate.ErrNoChange) {
			return fmt.Errorf("reverting migrations: %w", downErr)
		}
	}

	r.log.WithField("database", dbName).Info("Scratch schema removed")

	return nil
}

func (r *runner) Version(conn *sql.DB, dbName string) (uint, bool, error) {
	m, err := r.instance(conn, dbName)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("reading migration version: %w", err)
	}

	return version, dirty, nil
}

func (r *runner) instance(conn *sql.DB, dbName string) (*migrate.Migrate, error) {
	sourceDriver, err := iofs.New(embedded, "sql")
	if err != nil {
		return nil, fmt.Errorf("creating source driver: %w", err)
	}

	dbDriver, err := clickhouse.WithInstance(conn, &clickhouse.Config{
		DatabaseName:          dbName,
		MigrationsTable:       config.SchemaMigrationsTable,
		MigrationsTableEngine: "MergeTree",
		MultiStatementEnabled: true,
		MultiStatementMaxSize: 1024 * 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("creating clickhouse driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, dbName, dbDriver)
	if err != nil {
		return nil, fmt.Errorf("creating migrate instance: %w", err)
	}

	return m, nil
}
