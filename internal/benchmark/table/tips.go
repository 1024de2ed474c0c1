package table

import (
	"strings"

	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/ethpandaops/benchreport/internal/i18n"
)

// TipsFormatter renders the outcome banner and the remediation tips.
type TipsFormatter struct {
	text   *i18n.Bundle
	colors *ColorHelper
}

// NewTipsFormatter creates a new tips formatter.
func NewTipsFormatter(bundle *i18n.Bundle) *TipsFormatter {
	return &TipsFormatter{
		text:   bundle,
		colors: NewColorHelper(),
	}
}

// Format returns the success banner for an all-clear report, otherwise the
// failure banner followed by one label and solution per tip.
func (f *TipsFormatter) Format(report *evaluation.Report) string {
	var builder strings.Builder

	if report.Outcome == evaluation.OutcomeAllClear {
		builder.WriteString("\n" + f.colors.Success(f.text.String("benchsuccess")) + "\n")
		f.writeNotExecuted(&builder, report.Totals.NotExecuted)

		return builder.String()
	}

	builder.WriteString("\n" + f.colors.Failure(f.text.String("benchfail")) + "\n")
	f.writeNotExecuted(&builder, report.Totals.NotExecuted)

	for _, tip := range report.Tips {
		builder.WriteString("\n" + f.colors.Header("▸ "+f.text.CategoryLabel(tip.FailCategory)) + "\n")
		builder.WriteString("  " + f.text.CategorySolution(tip.FailCategory, tip.URL) + "\n")
	}

	return builder.String()
}

func (f *TipsFormatter) writeNotExecuted(builder *strings.Builder, count int) {
	if count == 0 {
		return
	}

	builder.WriteString(f.colors.Muted(f.text.String("benchnotexecuted", count)) + "\n")
}
