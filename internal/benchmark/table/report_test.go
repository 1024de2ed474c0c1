package table

import (
	"strings"
	"testing"

	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/ethpandaops/benchreport/internal/i18n"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioReport() *evaluation.Report {
	return &evaluation.Report{
		Rows: []evaluation.Row{
			{ID: "processor", Name: "Processor", Info: "cpu loop", Executed: true, Duration: 0.2, Limit: 0.5, Over: 0.8, Severity: evaluation.SeverityOK, Classification: evaluation.ClassificationPass},
			{ID: "memory", Name: "Memory", Executed: true, Duration: 0.5, Limit: 0.4, Over: 0.7, Severity: evaluation.SeverityWarn, Classification: evaluation.ClassificationFail, FailCategory: "slowmemory", RemediationURL: "https://docs/memory"},
			{ID: "dbread", Name: "Database read", Classification: evaluation.ClassificationNotExecuted},
		},
		Totals:  evaluation.Totals{TotalDuration: 0.7, Score: 70, Executed: 2, Passed: 1, Failed: 1, NotExecuted: 1},
		Tips:    []evaluation.Tip{{FailCategory: "slowmemory", URL: "https://docs/memory"}},
		Outcome: evaluation.OutcomeHasFailures,
	}
}

func newTestRenderer() Renderer {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return NewRenderer(log)
}

func TestResultsFormatter_Format(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	log := logrus.New()
	f := NewResultsFormatter(log, newTestRenderer(), i18n.Default())

	out := f.Format(scenarioReport())

	assert.Contains(t, out, "Benchmark report")
	assert.Contains(t, out, "Processor")
	assert.Contains(t, out, "cpu loop")
	assert.Contains(t, out, "0.200")
	assert.Contains(t, out, "0.500")
	assert.Contains(t, out, "0.800")
	assert.Contains(t, out, "0.700 sec")
	assert.Contains(t, out, "70 points")

	// Rows keep selection order.
	assert.Less(t, strings.Index(out, "Processor"), strings.Index(out, "Memory"))
	assert.Less(t, strings.Index(out, "Memory"), strings.Index(out, "Database read"))

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Database read") {
			assert.Equal(t, 3, strings.Count(line, " - "), "not executed rows show placeholders")
		}
	}
}

func TestResultsFormatter_Empty(t *testing.T) {
	f := NewResultsFormatter(logrus.New(), newTestRenderer(), i18n.Default())

	assert.Equal(t, "No probes selected", f.Format(&evaluation.Report{}))
}

func TestSummaryFormatter_Format(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	f := NewSummaryFormatter(logrus.New(), newTestRenderer(), i18n.Default())

	out := f.Format(scenarioReport().Totals)

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "1 (50.0%)")
	assert.Contains(t, out, "Not executed")
	assert.Contains(t, out, "70 points")
}

func TestTipsFormatter_Format(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	bundle := i18n.Default()
	f := NewTipsFormatter(bundle)

	failing := f.Format(scenarioReport())
	assert.Contains(t, failing, bundle.String("benchfail"))
	assert.Contains(t, failing, bundle.CategoryLabel("slowmemory"))
	assert.Contains(t, failing, "https://docs/memory")
	assert.NotContains(t, failing, bundle.String("benchsuccess"))

	allClear := f.Format(&evaluation.Report{Outcome: evaluation.OutcomeAllClear})
	assert.Contains(t, allClear, bundle.String("benchsuccess"))
	assert.NotContains(t, allClear, bundle.String("benchfail"))
}

func TestTipsFormatter_NotExecutedNote(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	bundle := i18n.Default()
	f := NewTipsFormatter(bundle)

	nothingRan := evaluation.Evaluate([]string{"processor", "memory"}, evaluation.MeasurementSet{}, bundle)
	require.Equal(t, evaluation.OutcomeAllClear, nothingRan.Outcome)

	out := f.Format(nothingRan)
	assert.Contains(t, out, bundle.String("benchsuccess"))
	assert.Contains(t, out, "2 selected probe(s) did not run")

	allClear := f.Format(&evaluation.Report{Outcome: evaluation.OutcomeAllClear})
	assert.NotContains(t, allClear, "did not run")
}
