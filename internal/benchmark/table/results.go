package table

import (
	"strconv"

	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/ethpandaops/benchreport/internal/benchmark/format"
	"github.com/ethpandaops/benchreport/internal/i18n"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// ResultsFormatter formats report rows as a table.
type ResultsFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	text     *i18n.Bundle
	colors   *ColorHelper
}

// NewResultsFormatter creates a new results table formatter.
func NewResultsFormatter(log logrus.FieldLogger, renderer Renderer, bundle *i18n.Bundle) *ResultsFormatter {
	return &ResultsFormatter{
		log:      log.WithField("component", "table.results_formatter"),
		renderer: renderer,
		text:     bundle,
		colors:   NewColorHelper(),
	}
}

// Format converts the report rows into a table followed by the total
// duration and score lines.
func (f *ResultsFormatter) Format(report *evaluation.Report) string {
	if len(report.Rows) == 0 {
		return "No probes selected"
	}

	var (
		headers = []string{
			"#",
			f.text.String("description"),
			f.text.String("during"),
			f.text.String("limit"),
			f.text.String("over"),
		}
		rows = make([][]string, 0, len(report.Rows)+2)
	)

	for i, row := range report.Rows {
		description := f.colors.Bold(row.Name)
		if row.Info != "" {
			description += "\n" + f.colors.Muted(row.Info)
		}

		if !row.Executed {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				description,
				f.colors.Muted(format.Placeholder),
				f.colors.Muted(format.Placeholder),
				f.colors.Muted(format.Placeholder),
			})

			continue
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			description,
			f.colors.FormatSeverity(row.Severity, format.Seconds(row.Duration)),
			format.Seconds(row.Limit),
			format.OptionalSeconds(row.Over),
		})
	}

	rows = append(rows,
		[]string{
			"",
			f.colors.Bold(f.text.String("total")),
			f.text.String("duration", format.Seconds(report.Totals.TotalDuration)),
			"",
			"",
		},
		[]string{
			"",
			f.colors.Bold(f.text.String("score")),
			f.text.String("points", format.Points(report.Totals.Score)),
			"",
			"",
		},
	)

	alignment := []int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	}

	return "\n" + f.colors.Header("▸ "+f.text.String("adminreport")) + "\n\n" +
		f.renderer.RenderToString(headers, rows, WithColumnAlignment(alignment), WithRowSeparator(true))
}
