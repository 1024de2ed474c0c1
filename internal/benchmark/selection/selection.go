// Package selection resolves which catalog probes a report should include.
package selection

import (
	"strings"

	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
)

// SplitIDs flattens repeated and comma-separated id lists, trimming spaces
// and dropping empty entries.
func SplitIDs(values []string) []string {
	out := make([]string, 0, len(values))

	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				out = append(out, id)
			}
		}
	}

	return out
}

// Resolve returns the probe ids to include in a report, in catalog order.
//
// An empty request selects the whole catalog. Otherwise the result is the
// intersection of requested and the catalog; unknown ids are dropped and
// the requested order is ignored.
func Resolve(requested []string, cat catalog.Catalog) []string {
	all := cat.IDs()
	if len(requested) == 0 {
		return all
	}

	wanted := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		wanted[id] = struct{}{}
	}

	selected := make([]string, 0, len(wanted))
	for _, id := range all {
		if _, ok := wanted[id]; ok {
			selected = append(selected, id)
		}
	}

	return selected
}
