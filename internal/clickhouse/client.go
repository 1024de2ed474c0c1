// Package clickhouse provides ClickHouse connection utilities for the database probes
package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

var errEmptyDSN = errors.New("clickhouse url is empty")

// Options parses dsn and applies the pool and timeout settings shared by every
// connection this tool opens.
func Options(dsn string) (*clickhouse.Options, error) {
	if dsn == "" {
		return nil, errEmptyDSN
	}

	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing clickhouse url: %w", err)
	}

	if opts.Auth.Database == "" {
		opts.Auth.Database = "default"
	}

	if opts.Settings == nil {
		opts.Settings = clickhouse.Settings{}
	}

	if _, ok := opts.Settings["max_execution_time"]; !ok {
		opts.Settings["max_execution_time"] = 60
	}

	if opts.DialTimeout == 0 {
		opts.DialTimeout = time.Second * 30
	}

	opts.MaxOpenConns = 5
	opts.MaxIdleConns = 5
	opts.ConnMaxLifetime = time.Duration(10) * time.Minute

	if opts.Compression == nil {
		opts.Compression = &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		}
	}

	return opts, nil
}

// Connect establishes a connection to ClickHouse using native protocol
func Connect(ctx context.Context, dsn string) (driver.Conn, error) {
	opts, err := Options(dsn)
	if err != nil {
		return nil, err
	}

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}

	// Test the connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := conn.Ping(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	return conn, nil
}

// OpenDB returns a database/sql handle for dsn, as required by golang-migrate.
func OpenDB(dsn string) (*sql.DB, string, error) {
	opts, err := Options(dsn)
	if err != nil {
		return nil, "", err
	}

	return clickhouse.OpenDB(opts), opts.Auth.Database, nil
}
