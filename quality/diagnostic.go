// Package quality implements the item quality engine: eight independent
// dimension checkers, a weighted score aggregator, and the item and bank
// runners that turn a collection of heterogeneous item records into
// deterministic pass/warn/fail reports. Checkers are pure functions over an
// item; diagnostics are the sole error-reporting channel for expected
// malformations.
package quality

// Dimension is one independent axis of quality checking.
type Dimension string

const (
	DimCompleteness   Dimension = "completeness"
	DimTypeStructure  Dimension = "type-structure"
	DimScoring        Dimension = "scoring-accuracy"
	DimPedagogy       Dimension = "pedagogy"
	DimRationale      Dimension = "rationale-quality"
	DimOptionLogic    Dimension = "option-logic"
	DimDataReferences Dimension = "data-references"
	DimErrorDetection Dimension = "error-detection"
)

// Dimensions lists all checking dimensions in their fixed run order.
func Dimensions() []Dimension {
	return []Dimension{
		DimCompleteness, DimTypeStructure, DimScoring, DimPedagogy,
		DimRationale, DimOptionLogic, DimDataReferences, DimErrorDetection,
	}
}

// Severity classifies a diagnostic. Critical defects make the item
// unusable and force a fail verdict; warnings are quality concerns that do
// not disqualify; info is a soft signal that never disqualifies alone.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Diagnostic is a single flagged defect. Immutable once produced; the
// aggregator and runners never mutate diagnostics downstream.
type Diagnostic struct {
	Dimension Dimension `json:"dimension"`
	Severity  Severity  `json:"severity"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Field     string    `json:"field,omitempty"`
}

func critical(dim Dimension, code, msg, field string) Diagnostic {
	return Diagnostic{Dimension: dim, Severity: SeverityCritical, Code: code, Message: msg, Field: field}
}

func warning(dim Dimension, code, msg, field string) Diagnostic {
	return Diagnostic{Dimension: dim, Severity: SeverityWarning, Code: code, Message: msg, Field: field}
}

func info(dim Dimension, code, msg, field string) Diagnostic {
	return Diagnostic{Dimension: dim, Severity: SeverityInfo, Code: code, Message: msg, Field: field}
}
