package actions

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethpandaops/benchreport/internal/benchmark"
	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/ethpandaops/benchreport/internal/benchmark/export"
	"github.com/ethpandaops/benchreport/internal/benchmark/output"
	"github.com/sirupsen/logrus"
)

// FormatTable prints the report for a terminal.
const FormatTable = "table"

// RunOptions controls a benchmark run.
type RunOptions struct {
	// Tests are the requested probe ids. Empty runs the whole catalog.
	Tests []string
	// Format is FormatTable or an export format name.
	Format string
	// Output is the export destination. Empty writes to the given writer.
	Output  string
	Verbose bool
	// ShareURL is printed after a table report. Empty hides it.
	ShareURL string
}

// RunBenchmark runs the requested probes and writes the report to w, or to
// opts.Output for export formats.
func RunBenchmark(ctx context.Context, log logrus.FieldLogger, w io.Writer, svc benchmark.Service, opts RunOptions) (*evaluation.Report, error) {
	var exportFormat export.Format

	if opts.Format != "" && opts.Format != FormatTable {
		f, err := export.ParseFormat(opts.Format)
		if err != nil {
			return nil, err
		}
		exportFormat = f
	}

	out := output.NewFormatter(log, w, opts.Verbose, svc.Strings())
	if exportFormat == "" {
		out.PrintPhase("Running benchmark")
	}

	start := time.Now()

	report, err := svc.Report(ctx, opts.Tests)
	if err != nil {
		return nil, err
	}

	if exportFormat == "" {
		out.PrintProgress(fmt.Sprintf("Executed %d of %d probes", report.Totals.Executed, len(report.Rows)), time.Since(start))
		out.PrintReport(report)
		out.PrintShare(opts.ShareURL)

		return report, nil
	}

	if err := writeExport(w, opts.Output, exportFormat, export.NewDocument(report, time.Now())); err != nil {
		return nil, err
	}

	return report, nil
}

func writeExport(w io.Writer, path string, f export.Format, doc export.Document) error {
	if path == "" {
		return export.Write(w, f, doc)
	}

	file, err := os.Create(path) //nolint:gosec // G304: operator-supplied output path
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := export.Write(file, f, doc); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	return nil
}
