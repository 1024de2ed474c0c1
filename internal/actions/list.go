package actions

import (
	"io"

	"github.com/ethpandaops/benchreport/internal/benchmark"
	"github.com/ethpandaops/benchreport/internal/benchmark/format"
	"github.com/ethpandaops/benchreport/internal/benchmark/table"
	"github.com/sirupsen/logrus"
)

// ListProbes writes the catalog with names and thresholds as a table.
func ListProbes(log logrus.FieldLogger, w io.Writer, svc benchmark.Service) {
	bundle := svc.Strings()
	descriptors := svc.Catalog().Descriptors()

	rows := make([][]string, 0, len(descriptors))
	for _, d := range descriptors {
		rows = append(rows, []string{
			d.ID,
			bundle.ProbeName(d.ID),
			format.Seconds(d.Limit),
			format.OptionalSeconds(d.Over),
			bundle.CategoryLabel(d.FailCategory),
		})
	}

	headers := []string{
		"ID",
		bundle.String("description"),
		bundle.String("limit"),
		bundle.String("over"),
		"Category",
	}

	table.NewRenderer(log).RenderToWriter(w, headers, rows)
}
