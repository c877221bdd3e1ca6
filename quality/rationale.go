package quality

import (
	"fmt"
	"strings"

	"github.com/clinsim/itemqa/item"
)

// boilerplatePhrases are generic template fragments left behind by batch
// generation. Matched as case-insensitive substrings.
var boilerplatePhrases = []string{
	"this is the correct answer because",
	"the other options are incorrect",
	"as explained above",
	"refer to the rationale",
	"see explanation",
}

// checkRationale validates the explanatory payload: minimum lengths,
// boilerplate phrasing, and the identical-text defect signal.
func checkRationale(it *item.Item, s Settings) []Diagnostic {
	r := it.Rationale
	if r == nil {
		return nil
	}

	var diags []Diagnostic
	correct := strings.TrimSpace(r.Correct)
	incorrect := strings.TrimSpace(r.Incorrect)

	if len(correct) < s.MinRationaleLength {
		diags = append(diags, warning(DimRationale, "RAT-001",
			fmt.Sprintf("correct explanation shorter than %d characters", s.MinRationaleLength),
			"rationale.correct"))
	}
	if len(incorrect) < s.MinRationaleLength {
		diags = append(diags, warning(DimRationale, "RAT-002",
			fmt.Sprintf("incorrect explanation shorter than %d characters", s.MinRationaleLength),
			"rationale.incorrect"))
	}
	if correct != "" && correct == incorrect {
		diags = append(diags, critical(DimRationale, "RAT-010",
			"correct and incorrect explanations are identical", "rationale"))
	}

	denylist := append(append([]string{}, boilerplatePhrases...), s.BoilerplateExtra...)
	lowered := strings.ToLower(correct + "\n" + incorrect)
	for _, phrase := range denylist {
		if phrase != "" && strings.Contains(lowered, strings.ToLower(phrase)) {
			diags = append(diags, warning(DimRationale, "RAT-020",
				fmt.Sprintf("boilerplate phrase %q", phrase), "rationale"))
		}
	}

	if len(r.ReviewUnits) == 0 {
		diags = append(diags, info(DimRationale, "RAT-030", "no review units linked", "rationale.reviewUnits"))
	}
	return diags
}
