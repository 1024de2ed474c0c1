// Package catalog holds the static, ordered list of benchmark probes the
// tool knows about. Catalog membership is the only source of truth for which
// probes are available; the catalog is built once at startup and never
// mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
)

var (
	errDuplicateID     = errors.New("duplicate probe id")
	errEmptyID         = errors.New("probe id is required")
	errNegativeLimit   = errors.New("limit must not be negative")
	errOverBelowLimit  = errors.New("critical threshold must not be below limit")
	errMissingCategory = errors.New("fail category is required")
)

// Descriptor identifies one available benchmark probe together with the
// thresholds the execution layer stamps onto its measurement records.
type Descriptor struct {
	ID string `yaml:"id" json:"id"`

	// Limit is the acceptable duration in seconds. Reaching it fails the probe.
	Limit float64 `yaml:"limit" json:"limit"`

	// Over is the critical duration in seconds, used only for display tiers.
	Over float64 `yaml:"over" json:"over"`

	FailCategory   string `yaml:"fail_category" json:"failCategory"`
	RemediationURL string `yaml:"remediation_url" json:"remediationUrl"`
}

// Catalog is an immutable, ordered set of descriptors.
type Catalog struct {
	descriptors []Descriptor
	index       map[string]int
}

// New builds a Catalog, preserving the order of the given descriptors.
func New(descriptors []Descriptor) (Catalog, error) {
	c := Catalog{
		descriptors: make([]Descriptor, 0, len(descriptors)),
		index:       make(map[string]int, len(descriptors)),
	}

	for _, d := range descriptors {
		if err := validate(d); err != nil {
			return Catalog{}, fmt.Errorf("probe %q: %w", d.ID, err)
		}

		if _, exists := c.index[d.ID]; exists {
			return Catalog{}, fmt.Errorf("probe %q: %w", d.ID, errDuplicateID)
		}

		c.index[d.ID] = len(c.descriptors)
		c.descriptors = append(c.descriptors, d)
	}

	return c, nil
}

// IDs returns the probe ids in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c.descriptors))
	for i, d := range c.descriptors {
		ids[i] = d.ID
	}

	return ids
}

// Descriptors returns a copy of all descriptors in catalog order.
func (c Catalog) Descriptors() []Descriptor {
	out := make([]Descriptor, len(c.descriptors))
	copy(out, c.descriptors)

	return out
}

// Lookup returns the descriptor registered under id.
func (c Catalog) Lookup(id string) (Descriptor, bool) {
	i, ok := c.index[id]
	if !ok {
		return Descriptor{}, false
	}

	return c.descriptors[i], true
}

// Contains reports whether id is a catalog member.
func (c Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of probes in the catalog.
func (c Catalog) Len() int {
	return len(c.descriptors)
}

func validate(d Descriptor) error {
	switch {
	case d.ID == "":
		return errEmptyID
	case d.Limit < 0 || d.Over < 0:
		return errNegativeLimit
	case d.Over > 0 && d.Over < d.Limit:
		return errOverBelowLimit
	case d.FailCategory == "":
		return errMissingCategory
	}

	return nil
}
