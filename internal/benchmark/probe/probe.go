// Package probe runs the benchmark workloads and turns their timings into
// measurement records.
//
// A Probe is a single timed workload. Only Run is timed: probes that need
// fixtures implement Preparer, and probes that hold resources implement
// Cleaner. Probe types are registered by id with a Registry and built from
// an Environment at run time, so a probe whose backend is not configured
// can decline with ErrUnavailable instead of failing the report.
package probe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/sirupsen/logrus"
)

// ErrUnavailable is returned by a Factory when the probe cannot run in the
// current environment, for example because its backend is not configured.
var ErrUnavailable = errors.New("probe unavailable")

// Probe is a timed benchmark workload.
type Probe interface {
	// ID returns the catalog id of the probe.
	ID() string

	// Run executes the workload once. Its wall-clock time is the measurement.
	Run(ctx context.Context) error
}

// Preparer is implemented by probes that need untimed setup before Run.
type Preparer interface {
	Prepare(ctx context.Context) error
}

// Cleaner is implemented by probes that release resources after Run.
// Cleanup is called whenever Prepare was attempted.
type Cleaner interface {
	Cleanup(ctx context.Context) error
}

// Environment carries what factories need to build probes.
type Environment struct {
	Config *config.AppConfig
	Log    logrus.FieldLogger
}

// Factory builds a probe for env.
type Factory func(env Environment) (Probe, error)

// Registry holds probe factories keyed by catalog id.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under id.
// Returns an error if the id is already registered.
func (r *Registry) Register(id string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("probe %q is already registered", id)
	}

	r.factories[id] = factory

	return nil
}

// Create builds the probe registered under id.
func (r *Registry) Create(id string, env Environment) (Probe, error) {
	r.mu.RLock()
	factory, exists := r.factories[id]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unknown probe %q: %w", id, ErrUnavailable)
	}

	return factory(env)
}

// IDs returns the registered ids in lexical order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
