package quality

import (
	"fmt"

	"github.com/clinsim/itemqa/item"
)

// checkPedagogy validates the taxonomy metadata against its fixed
// vocabularies. Known alias spellings (title case, hyphenated) are
// normalized before comparison, so only genuinely foreign terms flag.
func checkPedagogy(it *item.Item, _ Settings) []Diagnostic {
	ped := it.Pedagogy
	if ped == nil {
		return nil
	}

	var diags []Diagnostic
	if _, ok := item.KnownCognitiveLevel(ped.CognitiveLevel); !ok {
		diags = append(diags, warning(DimPedagogy, "PED-001",
			fmt.Sprintf("unknown cognitive level %q", ped.CognitiveLevel), "pedagogy.cognitiveLevel"))
	}
	if _, ok := item.KnownJudgmentStep(ped.JudgmentStep); !ok {
		diags = append(diags, warning(DimPedagogy, "PED-002",
			fmt.Sprintf("unknown clinical-judgment step %q", ped.JudgmentStep), "pedagogy.judgmentStep"))
	}
	if _, ok := item.KnownContentCategory(ped.Category); !ok {
		diags = append(diags, warning(DimPedagogy, "PED-003",
			fmt.Sprintf("unknown content category %q", ped.Category), "pedagogy.category"))
	}
	if ped.Difficulty < 1 || ped.Difficulty > 5 {
		diags = append(diags, warning(DimPedagogy, "PED-010",
			fmt.Sprintf("difficulty %d outside 1-5", ped.Difficulty), "pedagogy.difficulty"))
	}
	if len(ped.Tags) == 0 {
		diags = append(diags, info(DimPedagogy, "PED-020", "empty tag set", "pedagogy.tags"))
	}
	return diags
}
