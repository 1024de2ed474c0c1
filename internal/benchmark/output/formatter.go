// Package output prints run progress and the rendered report to the terminal.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/ethpandaops/benchreport/internal/benchmark/format"
	"github.com/ethpandaops/benchreport/internal/benchmark/table"
	"github.com/ethpandaops/benchreport/internal/i18n"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Formatter provides clean, human-friendly output
type Formatter interface {
	PrintPhase(phase string)
	PrintProgress(message string, duration time.Duration)
	PrintSuccess(message string)
	PrintError(message string, err error)
	PrintReport(report *evaluation.Report)
	PrintIntro()
	PrintShare(url string)
}

type formatter struct {
	writer  io.Writer
	verbose bool
	text    *i18n.Bundle

	resultsFormatter *table.ResultsFormatter
	summaryFormatter *table.SummaryFormatter
	tipsFormatter    *table.TipsFormatter

	green *color.Color
	red   *color.Color
	blue  *color.Color
	gray  *color.Color
}

// NewFormatter creates a new output formatter. The summary table is only
// printed in verbose mode.
func NewFormatter(log logrus.FieldLogger, writer io.Writer, verbose bool, bundle *i18n.Bundle) Formatter {
	renderer := table.NewRenderer(log)

	return &formatter{
		writer:           writer,
		verbose:          verbose,
		text:             bundle,
		resultsFormatter: table.NewResultsFormatter(log, renderer, bundle),
		summaryFormatter: table.NewSummaryFormatter(log, renderer, bundle),
		tipsFormatter:    table.NewTipsFormatter(bundle),
		green:            color.New(color.FgGreen),
		red:              color.New(color.FgRed),
		blue:             color.New(color.FgBlue),
		gray:             color.New(color.FgHiBlack),
	}
}

// PrintPhase prints phase separator
func (f *formatter) PrintPhase(phase string) {
	_, _ = f.blue.Fprintf(f.writer, "\n▸ %s\n", phase)
}

// PrintProgress prints progress with timing
func (f *formatter) PrintProgress(message string, duration time.Duration) {
	if duration > 0 {
		_, _ = f.gray.Fprintf(f.writer, "%s (%s)\n", message, format.Duration(duration))
	} else {
		_, _ = fmt.Fprintf(f.writer, "%s\n", message)
	}
}

// PrintSuccess prints a green message
func (f *formatter) PrintSuccess(message string) {
	_, _ = f.green.Fprintf(f.writer, "%s\n", message)
}

// PrintError prints a red message with error details
func (f *formatter) PrintError(message string, err error) {
	_, _ = f.red.Fprintf(f.writer, "%s", message)
	if err != nil {
		_, _ = f.red.Fprintf(f.writer, ": %v", err)
	}
	_, _ = fmt.Fprintf(f.writer, "\n")
}

// PrintReport prints the results table, the optional summary and the outcome
// banner with tips.
func (f *formatter) PrintReport(report *evaluation.Report) {
	_, _ = fmt.Fprintln(f.writer, f.resultsFormatter.Format(report))

	if f.verbose {
		_, _ = fmt.Fprintln(f.writer, f.summaryFormatter.Format(report.Totals))
	}

	_, _ = fmt.Fprint(f.writer, f.tipsFormatter.Format(report))
}

// PrintIntro prints the heading and the notes shown before probe selection.
func (f *formatter) PrintIntro() {
	_, _ = f.blue.Fprintf(f.writer, "\n%s\n\n", f.text.String("adminreport"))

	for _, key := range []string{"info", "infoaverage", "infodisclaimer"} {
		_, _ = fmt.Fprintf(f.writer, "%s\n\n", f.text.String(key))
	}
}

// PrintShare prints where results can be compared. An empty url prints nothing.
func (f *formatter) PrintShare(url string) {
	if url == "" {
		return
	}

	_, _ = f.gray.Fprintf(f.writer, "\n%s\n", f.text.String("benchshare", url))
}
