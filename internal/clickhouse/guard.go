package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	errNilConn = errors.New("database connection is nil")

	// ErrHostNotAllowed is returned when a destructive operation targets a
	// ClickHouse server whose hostName() is not in the allow list.
	ErrHostNotAllowed = errors.New("refusing destructive operation on non-allowed ClickHouse host")
)

// HostGuard checks the server behind a connection before schema changes that
// drop data.
type HostGuard interface {
	Check(ctx context.Context, db *sql.DB) error
}

type hostGuard struct {
	allowed []string
	log     logrus.FieldLogger
}

// Compile-time interface compliance check
var _ HostGuard = (*hostGuard)(nil)

// NewHostGuard creates a guard that only lets through the given hostnames.
func NewHostGuard(log logrus.FieldLogger, allowed []string) HostGuard {
	return &hostGuard{
		allowed: allowed,
		log:     log.WithField("component", "host_guard"),
	}
}

func (g *hostGuard) Check(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errNilConn
	}

	var hostname string
	if err := db.QueryRowContext(ctx, "SELECT hostName()").Scan(&hostname); err != nil {
		return fmt.Errorf("failed to query ClickHouse hostname: %w", err)
	}

	hostname = strings.TrimSpace(hostname)
	if !slices.Contains(g.allowed, hostname) {
		return fmt.Errorf("%w %q (allowed: %s; extend BENCH_SAFE_HOSTNAMES to permit it)",
			ErrHostNotAllowed, hostname, strings.Join(g.allowed, ", "))
	}

	g.log.WithField("hostname", hostname).Debug("ClickHouse host allowed")

	return nil
}
