// Package actions contains the operations behind the benchreport commands
package actions

import (
	"fmt"

	"github.com/ethpandaops/benchreport/internal/benchmark"
	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
	"github.com/ethpandaops/benchreport/internal/benchmark/probe"
	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/ethpandaops/benchreport/internal/i18n"
	"github.com/sirupsen/logrus"
)

// NewService builds the benchmark service described by cfg: the default
// catalog with overrides applied, the language bundle and the builtin probes.
func NewService(log logrus.FieldLogger, cfg *config.AppConfig) (benchmark.Service, error) {
	cat, err := catalog.NewLoader(log, catalog.DefaultDescriptors()).Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	bundle, err := i18n.Load(cfg.LanguageFile)
	if err != nil {
		return nil, fmt.Errorf("loading language file: %w", err)
	}

	env := probe.Environment{
		Config: cfg,
		Log:    log,
	}

	runner := probe.NewRunner(log, probe.DefaultRegistry(), cat, env, cfg.ProbeTimeout)

	return benchmark.NewService(log, cat, runner, bundle), nil
}
