package catalog

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Override adjusts the thresholds or remediation data of one built-in probe.
// Zero values leave the built-in setting untouched.
type Override struct {
	Limit          float64 `yaml:"limit"`
	Over           float64 `yaml:"over"`
	FailCategory   string  `yaml:"fail_category"`
	RemediationURL string  `yaml:"remediation_url"`
}

// OverrideFile is the on-disk shape of a catalog override file.
//
//	probes:
//	  processor:
//	    limit: 0.8
//	    over: 1.2
//	  dbread:
//	    remediation_url: https://wiki.example.com/clickhouse
type OverrideFile struct {
	Probes map[string]*Override `yaml:"probes"`
}

// Loader builds a Catalog from the built-in descriptors and an optional
// override file.
type Loader interface {
	Load(path string) (Catalog, error)
}

type loader struct {
	base []Descriptor
	log  logrus.FieldLogger
}

// NewLoader creates a catalog loader that applies overrides on top of base.
func NewLoader(log logrus.FieldLogger, base []Descriptor) Loader {
	return &loader{
		base: base,
		log:  log.WithField("component", "catalog_loader"),
	}
}

// Load returns the base catalog when path is empty, otherwise the base
// catalog with the overrides from path applied. Override entries naming
// unknown probes are skipped with a warning.
func (l *loader) Load(path string) (Catalog, error) {
	descriptors := make([]Descriptor, len(l.base))
	copy(descriptors, l.base)

	if path == "" {
		return New(descriptors)
	}

	l.log.WithField("path", path).Debug("loading catalog overrides")

	file, err := l.loadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("loading overrides from %s: %w", path, err)
	}

	known := make(map[string]int, len(descriptors))
	for i, d := range descriptors {
		known[d.ID] = i
	}

	for id, override := range file.Probes {
		i, ok := known[id]
		if !ok {
			l.log.WithField("probe", id).Warn("override for unknown probe, skipping")
			continue
		}

		if override == nil {
			continue
		}

		descriptors[i] = apply(descriptors[i], override)
	}

	c, err := New(descriptors)
	if err != nil {
		return Catalog{}, fmt.Errorf("validating overrides from %s: %w", path, err)
	}

	l.log.WithFields(logrus.Fields{
		"path":      path,
		"overrides": len(file.Probes),
	}).Info("applied catalog overrides")

	return c, nil
}

func (l *loader) loadFile(path string) (*OverrideFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: operator-supplied config path
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var file OverrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	return &file, nil
}

func apply(d Descriptor, o *Override) Descriptor {
	if o.Limit > 0 {
		d.Limit = o.Limit
	}

	if o.Over > 0 {
		d.Over = o.Over
	}

	if o.FailCategory != "" {
		d.FailCategory = o.FailCategory
	}

	if o.RemediationURL != "" {
		d.RemediationURL = o.RemediationURL
	}

	return d
}

// Compile-time interface compliance check
var _ Loader = (*loader)(nil)
