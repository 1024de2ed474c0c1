// Package config handles configuration loading and management
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var errNonPositive = errors.New("must be positive")

// AppConfig holds the application configuration loaded from environment variables.
type AppConfig struct {
	// CatalogFile optionally overrides probe thresholds and remediation links.
	CatalogFile string
	// LanguageFile optionally overrides display strings.
	LanguageFile string
	// WorkDir hosts the scratch files of the disk probes. Empty means the OS temp dir.
	WorkDir string

	// ClickHouseURL enables the database probes when set.
	ClickHouseURL string
	// SafeHostnames lists the ClickHouse hostName() values teardown may drop tables on.
	SafeHostnames []string
	// RedisURL enables the cache probes when set.
	RedisURL string
	// DNSServer is the host:port of the resolver used by the dnslookup probe.
	DNSServer string
	// DNSName is the name the dnslookup probe resolves.
	DNSName string
	// HTTPProbeURL is the URL the httpget probe fetches. Empty disables it.
	HTTPProbeURL string

	ProbeTimeout time.Duration

	ListenAddr       string
	ReportsPerMinute int

	// ShareURL is printed after a terminal report. Empty hides it.
	ShareURL string
}

// Load reads configuration from environment variables and .env file.
func Load() (*AppConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &AppConfig{
		CatalogFile:   getEnv("BENCH_CATALOG_FILE", ""),
		LanguageFile:  getEnv("BENCH_LANGUAGE_FILE", ""),
		WorkDir:       getEnv("BENCH_WORK_DIR", ""),
		ClickHouseURL: getEnv("CLICKHOUSE_URL", ""),
		SafeHostnames: splitList(getEnv("BENCH_SAFE_HOSTNAMES", DefaultSafeHostnames)),
		RedisURL:      getEnv("REDIS_URL", ""),
		DNSServer:     getEnv("DNS_SERVER", DefaultDNSServer),
		DNSName:       getEnv("DNS_NAME", DefaultDNSName),
		HTTPProbeURL:  getEnv("HTTP_PROBE_URL", DefaultHTTPProbeURL),
		ListenAddr:    getEnv("LISTEN_ADDR", DefaultListenAddr),
		ShareURL:      getEnv("BENCH_SHARE_URL", DefaultShareURL),
	}

	timeout, err := time.ParseDuration(getEnv("PROBE_TIMEOUT", DefaultProbeTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid PROBE_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid PROBE_TIMEOUT %s: %w", timeout, errNonPositive)
	}
	cfg.ProbeTimeout = timeout

	perMinute, err := strconv.Atoi(getEnv("REPORTS_PER_MINUTE", strconv.Itoa(DefaultReportsPerMinute)))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORTS_PER_MINUTE: %w", err)
	}
	cfg.ReportsPerMinute = perMinute

	return cfg, nil
}

func (c *AppConfig) String() string {
	return fmt.Sprintf(`Current Configuration:
======================
Catalog File:       %s
Language File:      %s
Work Directory:     %s
ClickHouse URL:     %s
Safe Hostnames:     %s
Redis URL:          %s
DNS Server:         %s
DNS Name:           %s
HTTP Probe URL:     %s
Probe Timeout:      %s
Listen Address:     %s
Reports Per Minute: %d
Share URL:          %s`,
		orNotSet(c.CatalogFile, "(built-in)"),
		orNotSet(c.LanguageFile, "(built-in)"),
		orNotSet(c.WorkDir, "(system temp)"),
		orNotSet(MaskURL(c.ClickHouseURL), "(not set, database probes disabled)"),
		orNotSet(strings.Join(c.SafeHostnames, ","), "(none)"),
		orNotSet(MaskURL(c.RedisURL), "(not set, cache probes disabled)"),
		c.DNSServer,
		c.DNSName,
		orNotSet(c.HTTPProbeURL, "(not set, http probe disabled)"),
		c.ProbeTimeout,
		c.ListenAddr,
		c.ReportsPerMinute,
		orNotSet(c.ShareURL, "(not set)"),
	)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func orNotSet(value, display string) string {
	if value == "" {
		return display
	}
	return value
}

// MaskURL hides the password component of a connection URL.
func MaskURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}

	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword(u.User.Username(), "********")
	}

	return u.String()
}
