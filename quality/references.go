package quality

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clinsim/itemqa/item"
)

// clockRe is strict 24-hour HH:mm.
var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// checkDataReferences runs opportunistic cross-checks against embedded
// clinical context when present, and under the stricter content standard
// flags missing enrichment fields.
func checkDataReferences(it *item.Item, s Settings) []Diagnostic {
	var diags []Diagnostic

	if ctx := it.Context; ctx != nil {
		if narrative := strings.TrimSpace(ctx.Narrative); narrative != "" {
			words := len(strings.Fields(narrative))
			if words < s.NarrativeWordMin || words > s.NarrativeWordMax {
				diags = append(diags, warning(DimDataReferences, "REF-001",
					fmt.Sprintf("narrative is %d words, outside [%d,%d]", words, s.NarrativeWordMin, s.NarrativeWordMax),
					"context.narrative"))
			}
		}
		for i, e := range ctx.Timeline {
			if !clockRe.MatchString(e.Time) {
				diags = append(diags, warning(DimDataReferences, "REF-002",
					fmt.Sprintf("timeline[%d] time %q is not HH:mm", i, e.Time), "context.timeline"))
			}
		}
	}

	if s.StrictContent && it.Rationale != nil {
		if len(it.Rationale.Pearls) == 0 {
			diags = append(diags, warning(DimDataReferences, "REF-010", "no clinical pearls", "rationale.pearls"))
		}
		if strings.TrimSpace(it.Rationale.Trap) == "" {
			diags = append(diags, warning(DimDataReferences, "REF-011", "no trap explanation", "rationale.trap"))
		}
		if strings.TrimSpace(it.Rationale.Mnemonic) == "" {
			diags = append(diags, warning(DimDataReferences, "REF-012", "no mnemonic", "rationale.mnemonic"))
		}
	}

	return diags
}
