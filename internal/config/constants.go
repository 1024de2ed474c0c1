package config

import "time"

const (
	// DefaultListenAddr is the address the HTTP API binds to.
	DefaultListenAddr = ":8089"
	// DefaultDNSServer is the resolver queried by the dnslookup probe.
	DefaultDNSServer = "1.1.1.1:53"
	// DefaultDNSName is the name resolved by the dnslookup probe.
	DefaultDNSName = "ethpandaops.io"
	// DefaultHTTPProbeURL is fetched by the httpget probe.
	DefaultHTTPProbeURL = "https://ethpandaops.io"
	// DefaultShareURL is where operators can compare their results.
	DefaultShareURL = "https://github.com/ethpandaops/benchreport/discussions"
	// DefaultSafeHostnames are the ClickHouse hosts teardown accepts out of the box.
	DefaultSafeHostnames = "localhost,clickhouse,clickhouse-01"
	// DefaultReportsPerMinute throttles the report endpoint.
	DefaultReportsPerMinute = 6
	// DefaultProbeTimeout bounds a single probe run.
	DefaultProbeTimeout = 30 * time.Second
	// ScratchTable is the ClickHouse table used by the database probes.
	ScratchTable = "benchmark_scratch"
	// ScratchKeyPrefix namespaces the keys used by the cache probes.
	ScratchKeyPrefix = "benchreport:scratch:"
	// SchemaMigrationsTable tracks applied scratch-schema migrations.
	SchemaMigrationsTable = "benchreport_schema_migrations"
)
