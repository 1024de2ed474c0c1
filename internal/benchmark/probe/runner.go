package probe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/sirupsen/logrus"
)

// Runner executes probes and collects their measurements.
type Runner interface {
	// Run executes the probes for ids one after another. Probes that are
	// unavailable or fail produce no record. The only error returned is
	// context cancellation, together with the records gathered so far.
	Run(ctx context.Context, ids []string) (evaluation.MeasurementSet, error)
}

type runner struct {
	log      logrus.FieldLogger
	registry *Registry
	catalog  catalog.Catalog
	env      Environment
	timeout  time.Duration
	now      func() time.Time
}

// Compile-time interface compliance check
var _ Runner = (*runner)(nil)

// NewRunner creates a Runner. Thresholds and fail fields are taken from cat;
// timeout bounds each probe's prepare, run and cleanup phases. A timeout of
// zero or less falls back to config.DefaultProbeTimeout.
func NewRunner(log logrus.FieldLogger, registry *Registry, cat catalog.Catalog, env Environment, timeout time.Duration) Runner {
	if env.Log == nil {
		env.Log = log
	}

	if timeout <= 0 {
		timeout = config.DefaultProbeTimeout
	}

	return &runner{
		log:      log.WithField("component", "probe_runner"),
		registry: registry,
		catalog:  cat,
		env:      env,
		timeout:  timeout,
		now:      time.Now,
	}
}

func (r *runner) Run(ctx context.Context, ids []string) (evaluation.MeasurementSet, error) {
	set := evaluation.MeasurementSet{
		Records: make([]evaluation.MeasurementRecord, 0, len(ids)),
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			set.Score = Score(set.Records)
			return set, fmt.Errorf("running probes: %w", err)
		}

		desc, ok := r.catalog.Lookup(id)
		if !ok {
			r.log.WithField("probe", id).Debug("Skipping probe not in catalog")
			continue
		}

		duration, err := r.measure(ctx, id)
		if err != nil {
			entry := r.log.WithField("probe", id).WithError(err)
			if errors.Is(err, ErrUnavailable) {
				entry.Debug("Probe unavailable, reporting as not executed")
			} else {
				entry.Warn("Probe failed, reporting as not executed")
			}

			continue
		}

		rec := Record(desc, duration)
		set.Records = append(set.Records, rec)

		r.log.WithFields(logrus.Fields{
			"probe":    id,
			"duration": duration,
			"severity": rec.SeverityClass,
		}).Debug("Probe finished")
	}

	set.Score = Score(set.Records)

	return set, nil
}

// measure builds, prepares, times and cleans up one probe.
func (r *runner) measure(ctx context.Context, id string) (float64, error) {
	p, err := r.registry.Create(id, r.env)
	if err != nil {
		return 0, err
	}

	if c, ok := p.(Cleaner); ok {
		defer func() {
			cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
			defer cancel()

			if cerr := c.Cleanup(cleanupCtx); cerr != nil {
				r.log.WithField("probe", id).WithError(cerr).Warn("Probe cleanup failed")
			}
		}()
	}

	if prep, ok := p.(Preparer); ok {
		prepCtx, cancel := context.WithTimeout(ctx, r.timeout)
		err := prep.Prepare(prepCtx)
		cancel()

		if err != nil {
			return 0, fmt.Errorf("preparing: %w", err)
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := r.now()
	if err := p.Run(runCtx); err != nil {
		return 0, fmt.Errorf("running: %w", err)
	}

	return r.now().Sub(start).Seconds(), nil
}

// Record builds the measurement record of an executed probe. Fail fields are
// only set when the duration reaches the limit.
func Record(desc catalog.Descriptor, duration float64) evaluation.MeasurementRecord {
	rec := evaluation.MeasurementRecord{
		ID:            desc.ID,
		Executed:      true,
		Duration:      duration,
		Limit:         desc.Limit,
		Over:          desc.Over,
		SeverityClass: evaluation.SeverityFor(duration, desc.Limit, desc.Over),
	}

	if evaluation.Classify(duration, desc.Limit) == evaluation.ClassificationFail {
		rec.FailCategory = desc.FailCategory
		rec.RemediationURL = desc.RemediationURL
	}

	return rec
}

// Score converts the executed durations into points: hundredths of a second,
// rounded up. Lower is better. Durations are summed in id order at microsecond
// precision so the result does not depend on execution order.
func Score(records []evaluation.MeasurementRecord) float64 {
	executed := make([]evaluation.MeasurementRecord, 0, len(records))
	for _, rec := range records {
		if rec.Executed {
			executed = append(executed, rec)
		}
	}

	sort.SliceStable(executed, func(i, j int) bool {
		return executed[i].ID < executed[j].ID
	})

	var micros float64
	for _, rec := range executed {
		micros += math.Round(rec.Duration * 1e6)
	}

	return math.Ceil(micros / 1e4)
}
