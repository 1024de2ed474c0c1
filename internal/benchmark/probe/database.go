package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
	"github.com/ethpandaops/benchreport/internal/clickhouse"
	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/google/uuid"
)

const (
	dbRows        = 2000
	dbReadQueries = 20
	dbPayloadSize = 256
)

// databaseProbe owns the ClickHouse connection and the rows tagged with runID.
type databaseProbe struct {
	dsn   string
	runID string
	conn  driver.Conn
	rows  int
}

func newDatabaseProbe(env Environment) (databaseProbe, error) {
	if env.Config == nil || env.Config.ClickHouseURL == "" {
		return databaseProbe{}, fmt.Errorf("CLICKHOUSE_URL not set: %w", ErrUnavailable)
	}

	return databaseProbe{
		dsn:   env.Config.ClickHouseURL,
		runID: uuid.NewString(),
		rows:  dbRows,
	}, nil
}

func (p *databaseProbe) connect(ctx context.Context) error {
	conn, err := clickhouse.Connect(ctx, p.dsn)
	if err != nil {
		return fmt.Errorf("connecting to clickhouse: %w", err)
	}

	p.conn = conn

	return nil
}

func (p *databaseProbe) insertRows(ctx context.Context) error {
	batch, err := p.conn.PrepareBatch(ctx, fmt.Sprintf("INSERT INTO %s (run_id, seq, payload)", config.ScratchTable))
	if err != nil {
		return fmt.Errorf("preparing batch: %w", err)
	}

	payload := strings.Repeat("x", dbPayloadSize)
	for i := 0; i < p.rows; i++ {
		if err := batch.Append(p.runID, uint32(i), payload); err != nil { //nolint:gosec // G115: bounded by dbRows
			_ = batch.Abort()
			return fmt.Errorf("appending row: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("sending batch: %w", err)
	}

	return nil
}

func (p *databaseProbe) Cleanup(ctx context.Context) error {
	if p.conn == nil {
		return nil
	}

	defer func() {
		_ = p.conn.Close()
	}()

	query := fmt.Sprintf("ALTER TABLE %s DELETE WHERE run_id = ?", config.ScratchTable)
	if err := p.conn.Exec(ctx, query, p.runID); err != nil {
		return fmt.Errorf("deleting scratch rows: %w", err)
	}

	return nil
}

// dbReadProbe queries rows inserted during Prepare.
type dbReadProbe struct {
	databaseProbe
	queries int
}

func newDBReadProbe(env Environment) (Probe, error) {
	base, err := newDatabaseProbe(env)
	if err != nil {
		return nil, err
	}

	return &dbReadProbe{databaseProbe: base, queries: dbReadQueries}, nil
}

func (p *dbReadProbe) ID() string { return catalog.ProbeDBRead }

func (p *dbReadProbe) Prepare(ctx context.Context) error {
	if err := p.connect(ctx); err != nil {
		return err
	}

	return p.insertRows(ctx)
}

func (p *dbReadProbe) Run(ctx context.Context) error {
	query := fmt.Sprintf("SELECT seq, payload FROM %s WHERE run_id = ? ORDER BY seq", config.ScratchTable)

	for i := 0; i < p.queries; i++ {
		rows, err := p.conn.Query(ctx, query, p.runID)
		if err != nil {
			return fmt.Errorf("querying scratch rows: %w", err)
		}

		var (
			seq     uint32
			payload string
			count   int
		)

		for rows.Next() {
			if err := rows.Scan(&seq, &payload); err != nil {
				_ = rows.Close()
				return fmt.Errorf("scanning scratch row: %w", err)
			}
			count++
		}

		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return fmt.Errorf("iterating scratch rows: %w", err)
		}

		_ = rows.Close()

		if count != p.rows {
			return fmt.Errorf("expected %d scratch rows, got %d", p.rows, count)
		}
	}

	return nil
}

// dbWriteProbe inserts a batch of rows.
type dbWriteProbe struct {
	databaseProbe
}

func newDBWriteProbe(env Environment) (Probe, error) {
	base, err := newDatabaseProbe(env)
	if err != nil {
		return nil, err
	}

	return &dbWriteProbe{databaseProbe: base}, nil
}

func (p *dbWriteProbe) ID() string { return catalog.ProbeDBWrite }

func (p *dbWriteProbe) Prepare(ctx context.Context) error {
	return p.connect(ctx)
}

func (p *dbWriteProbe) Run(ctx context.Context) error {
	return p.insertRows(ctx)
}
