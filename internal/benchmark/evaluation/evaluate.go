package evaluation

// Evaluate builds the report for the selected probe ids from the records
// supplied by the execution layer.
//
// Rows follow the order of selected. A selected id without an executed
// record becomes a not-executed placeholder. Records for ids that were not
// selected are ignored, and when several records share an id the first one
// wins.
func Evaluate(selected []string, set MeasurementSet, labels Labeler) *Report {
	byID := make(map[string]MeasurementRecord, len(set.Records))
	for _, rec := range set.Records {
		if _, seen := byID[rec.ID]; seen {
			continue
		}
		byID[rec.ID] = rec
	}

	report := &Report{
		Rows: make([]Row, 0, len(selected)),
		Tips: make([]Tip, 0),
	}
	report.Totals.Score = set.Score

	for _, id := range selected {
		rec, ok := byID[id]
		if !ok || !rec.Executed {
			report.Rows = append(report.Rows, placeholder(id, labels))
			report.Totals.NotExecuted++
			continue
		}

		row := executedRow(rec, labels)
		report.Rows = append(report.Rows, row)

		report.Totals.Executed++
		report.Totals.TotalDuration += row.Duration

		if row.Failed() {
			report.Totals.Failed++
		} else {
			report.Totals.Passed++
		}
	}

	report.Tips = ExtractTips(report.Rows)
	report.Outcome = OutcomeAllClear
	if len(report.Tips) > 0 {
		report.Outcome = OutcomeHasFailures
	}

	return report
}

// Classify applies the pass/fail boundary. Reaching the limit is a failure.
func Classify(duration, limit float64) Classification {
	if duration >= limit {
		return ClassificationFail
	}

	return ClassificationPass
}

// SeverityFor maps a duration onto a display tier. A zero over threshold
// collapses the warn tier into critical.
func SeverityFor(duration, limit, over float64) Severity {
	switch {
	case duration < limit:
		return SeverityOK
	case over > 0 && duration < over:
		return SeverityWarn
	default:
		return SeverityCritical
	}
}

// ExtractTips collects one tip per distinct (category, url) pair from the
// failed rows, in first-seen order.
func ExtractTips(rows []Row) []Tip {
	seen := make(map[Tip]struct{})
	tips := make([]Tip, 0)

	for _, row := range rows {
		if !row.Executed || !row.Failed() {
			continue
		}

		tip := Tip{FailCategory: row.FailCategory, URL: row.RemediationURL}
		if _, dup := seen[tip]; dup {
			continue
		}

		seen[tip] = struct{}{}
		tips = append(tips, tip)
	}

	return tips
}

func executedRow(rec MeasurementRecord, labels Labeler) Row {
	row := Row{
		ID:             rec.ID,
		Name:           rec.Name,
		Info:           rec.Info,
		Executed:       true,
		Duration:       rec.Duration,
		Limit:          rec.Limit,
		Over:           rec.Over,
		Classification: Classify(rec.Duration, rec.Limit),
	}

	if row.Name == "" {
		row.Name = probeName(rec.ID, labels)
	}

	if row.Info == "" {
		row.Info = probeInfo(rec.ID, labels)
	}

	row.Severity = rec.SeverityClass
	if !severityAgrees(row.Severity, row.Classification) {
		row.Severity = SeverityFor(rec.Duration, rec.Limit, rec.Over)
	}

	if row.Failed() {
		row.FailCategory = rec.FailCategory
		row.RemediationURL = rec.RemediationURL
	}

	return row
}

// severityAgrees rejects a supplied tier that contradicts the binary outcome.
func severityAgrees(s Severity, c Classification) bool {
	switch s {
	case SeverityOK:
		return c == ClassificationPass
	case SeverityWarn, SeverityCritical:
		return c == ClassificationFail
	default:
		return false
	}
}

func placeholder(id string, labels Labeler) Row {
	return Row{
		ID:             id,
		Name:           probeName(id, labels),
		Info:           probeInfo(id, labels),
		Classification: ClassificationNotExecuted,
	}
}

func probeName(id string, labels Labeler) string {
	if labels == nil {
		return id
	}

	return labels.ProbeName(id)
}

func probeInfo(id string, labels Labeler) string {
	if labels == nil {
		return ""
	}

	return labels.ProbeInfo(id)
}
