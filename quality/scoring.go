package quality

import (
	"fmt"

	"github.com/clinsim/itemqa/item"
)

// checkScoring validates the scoring rule against itself and against the
// item's own correctness data. Correctness keys that reference identifiers
// absent from the item's own collections are critical (SCORE-030): the
// item cannot be graded at all. Point-total mismatches on a polytomous
// rule are warnings, since the item is still gradable.
func checkScoring(it *item.Item, _ Settings) []Diagnostic {
	diags := checkKeyReferences(it)

	sc := it.Scoring
	if sc == nil {
		// Completeness already covers the absence.
		return diags
	}

	if !item.KnownMethod(sc.Method) {
		diags = append(diags, critical(DimScoring, "SCORE-001",
			fmt.Sprintf("unknown scoring method %q", sc.Method), "scoring.method"))
		return diags
	}
	if sc.MaxPoints <= 0 {
		diags = append(diags, critical(DimScoring, "SCORE-002",
			"maxPoints must be a positive integer", "scoring.maxPoints"))
		return diags
	}

	rules, known := item.Lookup(it.Type)

	// A dichotomous method, or a type that is only ever scored
	// dichotomously, pins the total to exactly one point whatever method
	// the record declares.
	if sc.MaxPoints != 1 && (sc.Method == item.Dichotomous || (known && rules.DichotomousEligible)) {
		diags = append(diags, critical(DimScoring, "SCORE-010",
			"dichotomously scored item must award exactly 1 point", "scoring.maxPoints"))
	}

	switch sc.Method {
	case item.Polytomous:
		if sc.MaxPoints < 2 {
			diags = append(diags, warning(DimScoring, "SCORE-022",
				"polytomous scoring awards fewer than 2 points", "scoring.maxPoints"))
		}
	case item.Linkage:
		if len(sc.PartialCredit) == 0 {
			diags = append(diags, warning(DimScoring, "SCORE-040",
				"linkage scoring declared without a partial-credit map", "scoring.partialCredit"))
		}
	}

	// The point total a type's own correctness data implies applies
	// whatever method the record declares.
	if known && !rules.DichotomousEligible && rules.ExpectedPoints != nil {
		expected := rules.ExpectedPoints(it)
		switch {
		case expected <= 0 || sc.MaxPoints == expected:
			// No derivable expectation, or an exact match.
		case it.Type == item.TypeBowtie && sc.MaxPoints == expected+1:
			// Some banks award one extra point for naming the condition
			// itself. Tolerated, but surfaced so authors converge.
			diags = append(diags, info(DimScoring, "SCORE-021",
				fmt.Sprintf("bowtie awards %d points, one above the %d correct keys", sc.MaxPoints, expected),
				"scoring.maxPoints"))
		default:
			diags = append(diags, warning(DimScoring, "SCORE-020",
				fmt.Sprintf("maxPoints is %d but correctness data implies %d", sc.MaxPoints, expected),
				"scoring.maxPoints"))
		}
	}

	if it.Type == item.TypeSelectN && it.SelectCount > 0 &&
		len(it.CorrectOptionIDs) > 0 && len(it.CorrectOptionIDs) != it.SelectCount {
		diags = append(diags, warning(DimScoring, "SCORE-023",
			fmt.Sprintf("n is %d but %d correct options are keyed", it.SelectCount, len(it.CorrectOptionIDs)),
			"correctOptionIds"))
	}

	return diags
}

// checkKeyReferences cross-checks every correctness-key identifier against
// the item's own option-like collections.
func checkKeyReferences(it *item.Item) []Diagnostic {
	var diags []Diagnostic
	missing := func(field, id, collection string) {
		diags = append(diags, critical(DimScoring, "SCORE-030",
			fmt.Sprintf("%s references %q, not present in %s", field, id, collection), field))
	}

	if it.CorrectOptionID != "" && len(it.Options) > 0 {
		if !idPresent(it.OptionIDs(), it.CorrectOptionID) {
			missing("correctOptionId", it.CorrectOptionID, "options")
		}
	}
	if len(it.Options) > 0 {
		for _, id := range it.CorrectOptionIDs {
			if !idPresent(it.OptionIDs(), id) {
				missing("correctOptionIds", id, "options")
			}
		}
		for _, id := range it.CorrectOrder {
			if !idPresent(it.OptionIDs(), id) {
				missing("correctOrder", id, "options")
			}
		}
	}
	for _, m := range it.CorrectMatches {
		if !idPresent(it.RowIDs(), m.RowID) {
			missing("correctMatches", m.RowID, "rows")
		}
		if !idPresent(it.ColumnIDs(), m.ColumnID) {
			missing("correctMatches", m.ColumnID, "columns")
		}
	}
	for _, id := range it.CorrectCauseIDs {
		if !idPresent(it.CauseIDs(), id) {
			missing("correctCauseIds", id, "causes")
		}
	}
	for _, id := range it.CorrectInterventionIDs {
		if !idPresent(it.InterventionIDs(), id) {
			missing("correctInterventionIds", id, "interventions")
		}
	}
	for _, id := range it.CorrectHotspotIDs {
		if !idPresent(it.HotspotIDs(), id) {
			missing("correctHotspotIds", id, "hotspots")
		}
	}
	for i, idx := range it.CorrectSpanIndices {
		if idx < 0 {
			diags = append(diags, critical(DimScoring, "SCORE-030",
				fmt.Sprintf("correctSpanIndices[%d] is negative", i), "correctSpanIndices"))
		}
	}
	for _, b := range it.Blanks {
		if b.CorrectOption != "" && len(b.Options) > 0 && !idPresent(b.Options, b.CorrectOption) {
			missing(fmt.Sprintf("blanks[%s].correctOption", b.ID), b.CorrectOption, "its own options")
		}
	}

	return diags
}

func idPresent(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
