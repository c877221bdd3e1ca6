package quality

import (
	"fmt"
	"strings"

	"github.com/clinsim/itemqa/item"
)

// checkCompleteness flags the absence of the common fields every item must
// carry. Missing identity or a too-short stem is critical; missing
// scoring, rationale, or pedagogy is a quality concern only.
func checkCompleteness(it *item.Item, s Settings) []Diagnostic {
	var diags []Diagnostic

	if strings.TrimSpace(it.ID) == "" {
		diags = append(diags, critical(DimCompleteness, "COMP-001", "item has no id", "id"))
	}
	if strings.TrimSpace(it.Type) == "" {
		diags = append(diags, critical(DimCompleteness, "COMP-002", "item has no type", "type"))
	}
	if len(strings.TrimSpace(it.Stem)) < s.MinStemLength {
		diags = append(diags, critical(DimCompleteness, "COMP-003",
			fmt.Sprintf("stem shorter than %d characters", s.MinStemLength), "stem"))
	}

	if it.Scoring == nil {
		diags = append(diags, warning(DimCompleteness, "COMP-010", "scoring rule missing", "scoring"))
	}
	if it.Rationale == nil {
		diags = append(diags, warning(DimCompleteness, "COMP-011", "rationale missing", "rationale"))
	}
	if it.Pedagogy == nil {
		diags = append(diags, warning(DimCompleteness, "COMP-012", "pedagogy missing", "pedagogy"))
	}

	return diags
}
