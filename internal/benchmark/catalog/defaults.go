package catalog

// Probe ids in catalog order.
const (
	ProbeProcessor  = "processor"
	ProbeMemory     = "memory"
	ProbeFileRead   = "fileread"
	ProbeFileWrite  = "filewrite"
	ProbeDBRead     = "dbread"
	ProbeDBWrite    = "dbwrite"
	ProbeCacheRead  = "cacheread"
	ProbeCacheWrite = "cachewrite"
	ProbeDNSLookup  = "dnslookup"
	ProbeHTTPGet    = "httpget"
)

// Fail categories shared between probes. Probes failing for the same
// underlying reason share a category so their remediation is shown once.
const (
	CategoryProcessor = "slowprocessor"
	CategoryMemory    = "slowmemory"
	CategoryDisk      = "slowharddrive"
	CategoryDatabase  = "slowdatabase"
	CategoryCache     = "slowcache"
	CategoryNetwork   = "slownetwork"
	CategoryWeb       = "slowweb"
)

const docsBase = "https://ethpandaops.io/docs/benchreport/tuning"

// DefaultDescriptors returns the built-in probe descriptors in catalog order.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		{ID: ProbeProcessor, Limit: 0.5, Over: 0.8, FailCategory: CategoryProcessor, RemediationURL: docsBase + "#processor"},
		{ID: ProbeMemory, Limit: 0.4, Over: 0.7, FailCategory: CategoryMemory, RemediationURL: docsBase + "#memory"},
		{ID: ProbeFileRead, Limit: 0.25, Over: 0.5, FailCategory: CategoryDisk, RemediationURL: docsBase + "#disk"},
		{ID: ProbeFileWrite, Limit: 1.0, Over: 1.25, FailCategory: CategoryDisk, RemediationURL: docsBase + "#disk"},
		{ID: ProbeDBRead, Limit: 0.75, Over: 1.0, FailCategory: CategoryDatabase, RemediationURL: docsBase + "#database"},
		{ID: ProbeDBWrite, Limit: 1.0, Over: 1.25, FailCategory: CategoryDatabase, RemediationURL: docsBase + "#database"},
		{ID: ProbeCacheRead, Limit: 0.3, Over: 0.5, FailCategory: CategoryCache, RemediationURL: docsBase + "#cache"},
		{ID: ProbeCacheWrite, Limit: 0.3, Over: 0.5, FailCategory: CategoryCache, RemediationURL: docsBase + "#cache"},
		{ID: ProbeDNSLookup, Limit: 0.2, Over: 0.5, FailCategory: CategoryNetwork, RemediationURL: docsBase + "#network"},
		{ID: ProbeHTTPGet, Limit: 0.5, Over: 0.8, FailCategory: CategoryWeb, RemediationURL: docsBase + "#web"},
	}
}

// Default returns the built-in catalog.
func Default() Catalog {
	c, err := New(DefaultDescriptors())
	if err != nil {
		// The built-in table is static; a failure here is a programming error.
		panic(err)
	}

	return c
}
