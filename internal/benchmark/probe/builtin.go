package probe

import (
	"fmt"

	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
)

// RegisterBuiltins adds the probes shipped with benchreport to reg.
func RegisterBuiltins(reg *Registry) error {
	builtins := []struct {
		id      string
		factory Factory
	}{
		{catalog.ProbeProcessor, newProcessorProbe},
		{catalog.ProbeMemory, newMemoryProbe},
		{catalog.ProbeFileRead, newFileReadProbe},
		{catalog.ProbeFileWrite, newFileWriteProbe},
		{catalog.ProbeDBRead, newDBReadProbe},
		{catalog.ProbeDBWrite, newDBWriteProbe},
		{catalog.ProbeCacheRead, newCacheReadProbe},
		{catalog.ProbeCacheWrite, newCacheWriteProbe},
		{catalog.ProbeDNSLookup, newDNSProbe},
		{catalog.ProbeHTTPGet, newHTTPProbe},
	}

	for _, b := range builtins {
		if err := reg.Register(b.id, b.factory); err != nil {
			return fmt.Errorf("registering builtin probes: %w", err)
		}
	}

	return nil
}

// DefaultRegistry returns a Registry holding the builtin probes.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	if err := RegisterBuiltins(reg); err != nil {
		// The builtin ids are constants and cannot collide.
		panic(err)
	}

	return reg
}
