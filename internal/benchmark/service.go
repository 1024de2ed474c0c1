// Package benchmark ties probe selection, execution and evaluation together.
package benchmark

import (
	"context"
	"fmt"

	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/ethpandaops/benchreport/internal/benchmark/probe"
	"github.com/ethpandaops/benchreport/internal/benchmark/selection"
	"github.com/ethpandaops/benchreport/internal/i18n"
	"github.com/sirupsen/logrus"
)

// Service produces benchmark reports.
type Service interface {
	// Catalog returns the probe catalog reports are built against.
	Catalog() catalog.Catalog
	// Strings returns the bundle used for labels.
	Strings() *i18n.Bundle
	// Report runs the requested probes and evaluates the results. An empty
	// request runs the whole catalog.
	Report(ctx context.Context, requested []string) (*evaluation.Report, error)
}

type service struct {
	log     logrus.FieldLogger
	catalog catalog.Catalog
	runner  probe.Runner
	strings *i18n.Bundle
}

// Compile-time interface compliance check
var _ Service = (*service)(nil)

// NewService creates a Service.
func NewService(log logrus.FieldLogger, cat catalog.Catalog, runner probe.Runner, bundle *i18n.Bundle) Service {
	return &service{
		log:     log.WithField("component", "benchmark"),
		catalog: cat,
		runner:  runner,
		strings: bundle,
	}
}

func (s *service) Catalog() catalog.Catalog {
	return s.catalog
}

func (s *service) Strings() *i18n.Bundle {
	return s.strings
}

func (s *service) Report(ctx context.Context, requested []string) (*evaluation.Report, error) {
	selected := selection.Resolve(requested, s.catalog)

	s.log.WithFields(logrus.Fields{
		"requested": len(requested),
		"selected":  len(selected),
	}).Info("Running benchmark")

	set, err := s.runner.Run(ctx, selected)
	if err != nil {
		return nil, fmt.Errorf("running benchmark: %w", err)
	}

	report := evaluation.Evaluate(selected, set, s.strings)

	s.log.WithFields(logrus.Fields{
		"executed": report.Totals.Executed,
		"failed":   report.Totals.Failed,
		"score":    report.Totals.Score,
		"outcome":  report.Outcome,
	}).Info("Benchmark finished")

	return report, nil
}
