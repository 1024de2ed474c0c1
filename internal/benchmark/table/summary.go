package table

import (
	"fmt"

	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/ethpandaops/benchreport/internal/benchmark/format"
	"github.com/ethpandaops/benchreport/internal/i18n"
	"github.com/sirupsen/logrus"
)

// SummaryFormatter formats report totals as a table.
type SummaryFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	text     *i18n.Bundle
	colors   *ColorHelper
}

// NewSummaryFormatter creates a new summary table formatter.
func NewSummaryFormatter(log logrus.FieldLogger, renderer Renderer, bundle *i18n.Bundle) *SummaryFormatter {
	return &SummaryFormatter{
		log:      log.WithField("component", "table.summary_formatter"),
		renderer: renderer,
		text:     bundle,
		colors:   NewColorHelper(),
	}
}

// Format converts report totals into a formatted table string.
func (f *SummaryFormatter) Format(totals evaluation.Totals) string {
	var passRate float64
	if totals.Executed > 0 {
		passRate = float64(totals.Passed) / float64(totals.Executed) * 100.0
	}

	passedValue := fmt.Sprintf("%d (%s)", totals.Passed, f.colors.FormatPercentage(passRate))
	if totals.Executed > 0 && totals.Passed == totals.Executed {
		passedValue = f.colors.Success(fmt.Sprintf("%d (%.1f%%)", totals.Passed, passRate))
	}

	failedValue := f.colors.Success(fmt.Sprintf("%d", totals.Failed))
	if totals.Failed > 0 {
		failedValue = f.colors.Failure(fmt.Sprintf("%d", totals.Failed))
	}

	skippedValue := fmt.Sprintf("%d", totals.NotExecuted)
	if totals.NotExecuted > 0 {
		skippedValue = f.colors.Muted(skippedValue)
	}

	var (
		headers = []string{"Metric", "Value"}
		rows    = [][]string{
			{"Executed", f.colors.Bold(fmt.Sprintf("%d", totals.Executed))},
			{"Passed", passedValue},
			{"Failed", failedValue},
			{f.text.String("notexecuted"), skippedValue},
			{f.text.String("total"), f.text.String("duration", format.Seconds(totals.TotalDuration))},
			{f.text.String("scoremsg"), f.colors.Bold(f.text.String("points", format.Points(totals.Score)))},
		}
	)

	return "\n" + f.colors.Header("▸ Summary") + "\n\n" + f.renderer.RenderToString(headers, rows)
}
