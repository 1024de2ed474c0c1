// Package evaluation turns raw probe measurements into a benchmark report:
// per-probe pass/fail rows in selection order, aggregate totals and a
// deduplicated list of remediation tips.
//
// Everything here is a pure function of its inputs. Nothing is cached and
// nothing is shared between calls.
package evaluation

// Classification is the binary outcome of an executed probe.
type Classification string

const (
	// ClassificationPass means the probe finished below its limit.
	ClassificationPass Classification = "pass"
	// ClassificationFail means the probe reached or exceeded its limit.
	ClassificationFail Classification = "fail"
	// ClassificationNotExecuted marks a placeholder row for a probe that did not run.
	ClassificationNotExecuted Classification = "not_executed"
)

// Severity is the display tier of an executed probe.
type Severity string

const (
	// SeverityOK is used below the limit.
	SeverityOK Severity = "ok"
	// SeverityWarn is used at or above the limit but below the critical threshold.
	SeverityWarn Severity = "warn"
	// SeverityCritical is used at or above the critical threshold.
	SeverityCritical Severity = "critical"
)

// Outcome summarises a whole report.
type Outcome string

const (
	// OutcomeAllClear means no remediation tips were produced.
	OutcomeAllClear Outcome = "all_clear"
	// OutcomeHasFailures means at least one tip was produced.
	OutcomeHasFailures Outcome = "has_failures"
)

// MeasurementRecord is the outcome of running, or not running, one probe as
// reported by the execution layer. Duration, Limit, Over and SeverityClass
// are only meaningful when Executed is true.
type MeasurementRecord struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	Info           string   `json:"info,omitempty"`
	Executed       bool     `json:"executed"`
	Duration       float64  `json:"duration"` // seconds
	Limit          float64  `json:"limit"`    // seconds
	Over           float64  `json:"over"`     // seconds, critical threshold
	SeverityClass  Severity `json:"severityClass,omitempty"`
	FailCategory   string   `json:"failCategory,omitempty"`
	RemediationURL string   `json:"remediationUrl,omitempty"`
}

// MeasurementSet is everything the execution layer hands back for one run.
// Score is computed by the execution layer and passed through untouched.
type MeasurementSet struct {
	Records []MeasurementRecord
	Score   float64
}

// Row is one line of the rendered report. Duration, Limit and Over are zero
// on rows that were not executed.
type Row struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Info           string         `json:"info"`
	Executed       bool           `json:"executed"`
	Duration       float64        `json:"duration"`
	Limit          float64        `json:"limit"`
	Over           float64        `json:"over"`
	Severity       Severity       `json:"severity,omitempty"`
	Classification Classification `json:"classification"`
	FailCategory   string         `json:"failCategory,omitempty"`
	RemediationURL string         `json:"remediationUrl,omitempty"`
}

// Failed reports whether the row is an executed probe that failed.
func (r Row) Failed() bool {
	return r.Classification == ClassificationFail
}

// Totals aggregates the executed rows of a report.
type Totals struct {
	TotalDuration float64 `json:"totalDuration"` // seconds
	Score         float64 `json:"score"`
	Executed      int     `json:"executed"`
	Passed        int     `json:"passed"`
	Failed        int     `json:"failed"`
	NotExecuted   int     `json:"notExecuted"`
}

// Tip is a remediation hint for one failure category.
type Tip struct {
	FailCategory string `json:"failCategory"`
	URL          string `json:"url"`
}

// Report is the complete output of an evaluation.
type Report struct {
	Rows    []Row   `json:"rows"`
	Totals  Totals  `json:"totals"`
	Tips    []Tip   `json:"tips"`
	Outcome Outcome `json:"outcome"`
}

// Labeler resolves display strings for probes. It never influences
// classification.
type Labeler interface {
	ProbeName(id string) string
	ProbeInfo(id string) string
}
