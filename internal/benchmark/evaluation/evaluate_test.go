package evaluation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLabels struct{}

func (stubLabels) ProbeName(id string) string { return id + " name" }
func (stubLabels) ProbeInfo(id string) string { return id + " info" }

func executed(id string, duration, limit float64, category, url string) MeasurementRecord {
	return MeasurementRecord{
		ID:             id,
		Executed:       true,
		Duration:       duration,
		Limit:          limit,
		FailCategory:   category,
		RemediationURL: url,
	}
}

func TestEvaluate_Scenario(t *testing.T) {
	t.Parallel()

	set := MeasurementSet{
		Records: []MeasurementRecord{
			executed("A", 2.0, 5.0, "", ""),
			executed("B", 5.0, 5.0, "memory", "/tips/memory"),
		},
		Score: 700,
	}

	report := Evaluate([]string{"A", "B", "C"}, set, stubLabels{})

	require.Len(t, report.Rows, 3)
	assert.Equal(t, "A", report.Rows[0].ID)
	assert.Equal(t, ClassificationPass, report.Rows[0].Classification)
	assert.Equal(t, "B", report.Rows[1].ID)
	assert.Equal(t, ClassificationFail, report.Rows[1].Classification)
	assert.Equal(t, "C", report.Rows[2].ID)
	assert.False(t, report.Rows[2].Executed)
	assert.Equal(t, ClassificationNotExecuted, report.Rows[2].Classification)
	assert.Equal(t, "C name", report.Rows[2].Name)
	assert.Equal(t, "C info", report.Rows[2].Info)

	assert.InDelta(t, 7.0, report.Totals.TotalDuration, 1e-9)
	assert.InDelta(t, 700.0, report.Totals.Score, 1e-9)
	assert.Equal(t, 2, report.Totals.Executed)
	assert.Equal(t, 1, report.Totals.Passed)
	assert.Equal(t, 1, report.Totals.Failed)
	assert.Equal(t, 1, report.Totals.NotExecuted)

	assert.Equal(t, []Tip{{FailCategory: "memory", URL: "/tips/memory"}}, report.Tips)
	assert.Equal(t, OutcomeHasFailures, report.Outcome)
}

func TestEvaluate_CoverageMatchesSelection(t *testing.T) {
	t.Parallel()

	set := MeasurementSet{
		Records: []MeasurementRecord{
			executed("X", 1, 2, "", ""),
			executed("B", 1, 2, "", ""),
			executed("unknown", 9, 1, "cat", "/u"),
		},
	}

	selections := [][]string{
		{},
		{"B"},
		{"A", "B", "C"},
		{"C", "A"},
	}

	for _, selected := range selections {
		report := Evaluate(selected, set, nil)

		ids := make([]string, 0, len(report.Rows))
		for _, row := range report.Rows {
			ids = append(ids, row.ID)
		}

		assert.Equal(t, selected, ids)
		assert.Empty(t, report.Tips, "records outside the selection must be ignored")
	}
}

func TestEvaluate_EmptySelection(t *testing.T) {
	t.Parallel()

	report := Evaluate(nil, MeasurementSet{Records: []MeasurementRecord{executed("A", 1, 2, "", "")}}, nil)

	assert.Empty(t, report.Rows)
	assert.Zero(t, report.Totals.TotalDuration)
	assert.Equal(t, OutcomeAllClear, report.Outcome)
	assert.NotNil(t, report.Tips)
}

func TestEvaluate_NoExecutedRows(t *testing.T) {
	t.Parallel()

	set := MeasurementSet{
		Records: []MeasurementRecord{
			{ID: "A", Executed: false, Duration: 3, Limit: 1, FailCategory: "cpu"},
		},
	}

	report := Evaluate([]string{"A", "B"}, set, nil)

	assert.Zero(t, report.Totals.TotalDuration)
	assert.Equal(t, 2, report.Totals.NotExecuted)
	assert.Empty(t, report.Tips)
	assert.Equal(t, OutcomeAllClear, report.Outcome)

	for _, row := range report.Rows {
		assert.Zero(t, row.Duration)
		assert.Zero(t, row.Limit)
		assert.Empty(t, row.Severity)
		assert.Empty(t, row.FailCategory)
	}

	assert.Equal(t, "A", report.Rows[0].Name, "nil labeler falls back to the id")
}

func TestEvaluate_TipDeduplication(t *testing.T) {
	t.Parallel()

	set := MeasurementSet{
		Records: []MeasurementRecord{
			executed("A", 3, 1, "db", "/x"),
			executed("B", 3, 1, "cpu", "/c"),
			executed("C", 3, 1, "db", "/x"),
			executed("D", 3, 1, "db", "/x"),
			executed("E", 3, 1, "db", "/y"),
			executed("F", 0.5, 1, "db", "/z"),
		},
	}

	report := Evaluate([]string{"A", "B", "C", "D", "E", "F"}, set, nil)

	assert.Equal(t, []Tip{
		{FailCategory: "db", URL: "/x"},
		{FailCategory: "cpu", URL: "/c"},
		{FailCategory: "db", URL: "/y"},
	}, report.Tips)
}

func TestEvaluate_FailingRecordWithoutCategoryStillFails(t *testing.T) {
	t.Parallel()

	report := Evaluate([]string{"A"}, MeasurementSet{Records: []MeasurementRecord{executed("A", 2, 1, "", "")}}, nil)

	assert.Equal(t, []Tip{{}}, report.Tips)
	assert.Equal(t, OutcomeHasFailures, report.Outcome)
}

func TestEvaluate_DuplicateRecordsFirstWins(t *testing.T) {
	t.Parallel()

	set := MeasurementSet{
		Records: []MeasurementRecord{
			executed("A", 1, 5, "", ""),
			executed("A", 9, 5, "cpu", "/c"),
		},
	}

	report := Evaluate([]string{"A"}, set, nil)

	require.Len(t, report.Rows, 1)
	assert.InDelta(t, 1.0, report.Rows[0].Duration, 1e-9)
	assert.Equal(t, ClassificationPass, report.Rows[0].Classification)
	assert.Empty(t, report.Tips)
}

func TestEvaluate_PassingRowsDropFailFields(t *testing.T) {
	t.Parallel()

	report := Evaluate([]string{"A"}, MeasurementSet{Records: []MeasurementRecord{executed("A", 1, 5, "cpu", "/c")}}, nil)

	assert.Empty(t, report.Rows[0].FailCategory)
	assert.Empty(t, report.Rows[0].RemediationURL)
}

func TestEvaluate_Deterministic(t *testing.T) {
	t.Parallel()

	set := MeasurementSet{
		Records: []MeasurementRecord{
			executed("C", 0.1, 1, "", ""),
			executed("A", 4, 1, "disk", "/d"),
			executed("B", 2, 1, "cpu", "/c"),
		},
		Score: 610,
	}
	selected := []string{"A", "B", "C", "D"}

	first, err := json.Marshal(Evaluate(selected, set, stubLabels{}))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := json.Marshal(Evaluate(selected, set, stubLabels{}))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestEvaluate_RecordLabelsWin(t *testing.T) {
	t.Parallel()

	rec := executed("A", 1, 2, "", "")
	rec.Name = "Processor"
	rec.Info = "Loop"

	report := Evaluate([]string{"A"}, MeasurementSet{Records: []MeasurementRecord{rec}}, stubLabels{})

	assert.Equal(t, "Processor", report.Rows[0].Name)
	assert.Equal(t, "Loop", report.Rows[0].Info)
}

func TestClassify_Boundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration float64
		limit    float64
		expected Classification
	}{
		{name: "equal is fail", duration: 5.0, limit: 5.0, expected: ClassificationFail},
		{name: "one unit below passes", duration: 4.0, limit: 5.0, expected: ClassificationPass},
		{name: "above fails", duration: 5.001, limit: 5.0, expected: ClassificationFail},
		{name: "zero limit always fails", duration: 0, limit: 0, expected: ClassificationFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Classify(tt.duration, tt.limit))
		})
	}
}

func TestSeverityFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration float64
		limit    float64
		over     float64
		expected Severity
	}{
		{name: "below limit", duration: 0.2, limit: 0.5, over: 0.8, expected: SeverityOK},
		{name: "at limit", duration: 0.5, limit: 0.5, over: 0.8, expected: SeverityWarn},
		{name: "between limit and over", duration: 0.7, limit: 0.5, over: 0.8, expected: SeverityWarn},
		{name: "at over", duration: 0.8, limit: 0.5, over: 0.8, expected: SeverityCritical},
		{name: "no over threshold", duration: 0.6, limit: 0.5, over: 0, expected: SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SeverityFor(tt.duration, tt.limit, tt.over))
		})
	}
}

func TestEvaluate_SeverityFallback(t *testing.T) {
	t.Parallel()

	contradicting := executed("A", 6, 5, "cpu", "/c")
	contradicting.Over = 10
	contradicting.SeverityClass = SeverityOK

	supplied := executed("B", 1, 5, "", "")
	supplied.SeverityClass = SeverityOK

	missing := executed("C", 12, 5, "cpu", "/c")
	missing.Over = 10

	report := Evaluate([]string{"A", "B", "C"}, MeasurementSet{Records: []MeasurementRecord{contradicting, supplied, missing}}, nil)

	assert.Equal(t, SeverityWarn, report.Rows[0].Severity)
	assert.Equal(t, SeverityOK, report.Rows[1].Severity)
	assert.Equal(t, SeverityCritical, report.Rows[2].Severity)
}

func TestRow_JSONKeepsZeroMeasurements(t *testing.T) {
	t.Parallel()

	report := Evaluate([]string{"A"}, MeasurementSet{Records: []MeasurementRecord{executed("A", 0, 0, "cpu", "/c")}}, nil)
	require.Len(t, report.Rows, 1)

	data, err := json.Marshal(report.Rows[0])
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Equal(t, true, fields["executed"])
	assert.Contains(t, fields, "duration")
	assert.Contains(t, fields, "limit")
	assert.Contains(t, fields, "over")
	assert.InDelta(t, 0.0, fields["duration"], 1e-9)
}
