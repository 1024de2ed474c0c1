package table

import (
	"fmt"

	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/fatih/color"
)

// ColorHelper provides utilities for coloring report output
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a new color helper
// Colors are enabled only when outputting to a terminal
func NewColorHelper() *ColorHelper {
	return &ColorHelper{
		enabled: !color.NoColor,
	}
}

// Success returns green colored text
func (c *ColorHelper) Success(text string) string {
	if !c.enabled {
		return text
	}
	return color.GreenString(text)
}

// Failure returns red colored text
func (c *ColorHelper) Failure(text string) string {
	if !c.enabled {
		return text
	}
	return color.RedString(text)
}

// Warning returns yellow colored text
func (c *ColorHelper) Warning(text string) string {
	if !c.enabled {
		return text
	}
	return color.YellowString(text)
}

// Muted returns gray colored text
func (c *ColorHelper) Muted(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgHiBlack).Sprint(text)
}

// Bold returns bold text
func (c *ColorHelper) Bold(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.Bold).Sprint(text)
}

// Header returns bold cyan text for section headers
func (c *ColorHelper) Header(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// FormatSeverity colors text by severity tier
func (c *ColorHelper) FormatSeverity(severity evaluation.Severity, text string) string {
	switch severity {
	case evaluation.SeverityOK:
		return c.Success(text)
	case evaluation.SeverityWarn:
		return c.Warning(text)
	case evaluation.SeverityCritical:
		return c.Failure(text)
	default:
		return text
	}
}

// FormatClassification returns appropriately colored status text
func (c *ColorHelper) FormatClassification(classification evaluation.Classification) string {
	switch classification {
	case evaluation.ClassificationPass:
		return c.Success("✓ PASS")
	case evaluation.ClassificationFail:
		return c.Failure("✗ FAIL")
	default:
		return c.Muted("- SKIP")
	}
}

// FormatPercentage returns colored percentage based on value
func (c *ColorHelper) FormatPercentage(value float64) string {
	text := fmt.Sprintf("%.1f%%", value)
	if value == 100.0 {
		return c.Success(text)
	}
	if value >= 90.0 {
		return c.Warning(text)
	}
	return c.Failure(text)
}
