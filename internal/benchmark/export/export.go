// Package export serialises a report for machines: a JSON document carrying a
// run id and timestamp, or a CSV with one line per probe.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/google/uuid"
)

// Format names an export encoding.
type Format string

const (
	// FormatJSON is a single indented JSON document.
	FormatJSON Format = "json"
	// FormatCSV is a header line followed by one line per probe.
	FormatCSV Format = "csv"
)

var errUnknownFormat = errors.New("unknown export format")

// Document is the exported form of one report.
type Document struct {
	RunID       string             `json:"runId"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Rows        []evaluation.Row   `json:"rows"`
	Totals      evaluation.Totals  `json:"totals"`
	Tips        []evaluation.Tip   `json:"tips"`
	Outcome     evaluation.Outcome `json:"outcome"`
}

// NewDocument wraps report with a fresh run id.
func NewDocument(report *evaluation.Report, generatedAt time.Time) Document {
	return Document{
		RunID:       uuid.NewString(),
		GeneratedAt: generatedAt.UTC(),
		Rows:        report.Rows,
		Totals:      report.Totals,
		Tips:        report.Tips,
		Outcome:     report.Outcome,
	}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatCSV:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownFormat, name)
	}
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, doc)
	case FormatCSV:
		return WriteCSV(w, doc)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, f)
	}
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding json report: %w", err)
	}

	return nil
}

var csvHeader = []string{
	"run_id", "id", "name", "executed", "classification", "severity",
	"duration_s", "limit_s", "over_s", "fail_category", "remediation_url",
}

// WriteCSV writes one line per row. Numeric cells of not-executed rows are empty.
func WriteCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range doc.Rows {
		record := []string{
			doc.RunID,
			row.ID,
			row.Name,
			strconv.FormatBool(row.Executed),
			string(row.Classification),
			string(row.Severity),
			"",
			"",
			"",
			row.FailCategory,
			row.RemediationURL,
		}

		if row.Executed {
			record[6] = strconv.FormatFloat(row.Duration, 'f', 4, 64)
			record[7] = strconv.FormatFloat(row.Limit, 'f', 4, 64)
			record[8] = strconv.FormatFloat(row.Over, 'f', 4, 64)
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %s: %w", row.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}
