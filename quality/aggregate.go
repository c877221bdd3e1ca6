package quality

// Verdict is the pass/warn/fail gate derived from raw diagnostics. The
// numeric score ranks items; the verdict gates them.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictWarn Verdict = "warn"
	VerdictFail Verdict = "fail"
)

// dimensionWeights is the fixed weighting of the overall score. Weights
// total 100.
var dimensionWeights = map[Dimension]int{
	DimCompleteness:   20,
	DimTypeStructure:  20,
	DimScoring:        20,
	DimPedagogy:       10,
	DimRationale:      10,
	DimOptionLogic:    10,
	DimDataReferences: 5,
	DimErrorDetection: 5,
}

// dimensionScore applies the fixed decay rule to one dimension's
// diagnostics: criticals dominate (floor 0), then warnings (floor 40),
// then infos (floor 80). A clean dimension scores 100.
func dimensionScore(diags []Diagnostic) float64 {
	var criticals, warnings, infos int
	for _, d := range diags {
		switch d.Severity {
		case SeverityCritical:
			criticals++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		}
	}

	switch {
	case criticals > 0:
		score := 100 - 40*criticals - 10*warnings
		return clamp(score, 0)
	case warnings > 0:
		score := 100 - 15*warnings - 5*infos
		return clamp(score, 40)
	case infos > 0:
		score := 100 - 5*infos
		return clamp(score, 80)
	default:
		return 100
	}
}

func clamp(score, floor int) float64 {
	if score < floor {
		return float64(floor)
	}
	return float64(score)
}

// aggregate computes per-dimension scores, the weighted overall score, and
// the verdict from the full diagnostic set.
func aggregate(diags []Diagnostic) (float64, map[Dimension]float64, Verdict) {
	byDim := make(map[Dimension][]Diagnostic)
	for _, d := range diags {
		byDim[d.Dimension] = append(byDim[d.Dimension], d)
	}

	scores := make(map[Dimension]float64, len(dimensionWeights))
	var overall float64
	for dim, weight := range dimensionWeights {
		s := dimensionScore(byDim[dim])
		scores[dim] = s
		overall += s * float64(weight)
	}
	overall /= 100

	verdict := VerdictPass
	for _, d := range diags {
		if d.Severity == SeverityCritical {
			verdict = VerdictFail
			break
		}
		if d.Severity == SeverityWarning {
			verdict = VerdictWarn
		}
	}

	return overall, scores, verdict
}
