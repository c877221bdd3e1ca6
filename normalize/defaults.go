package normalize

import (
	"github.com/clinsim/itemqa/item"
)

// defaultScoring builds the conservative per-type scoring default used
// when an item arrives without a scoring rule. Dichotomous-eligible types
// get the one-point rule; polytomous types derive the total from their own
// correctness data, falling back to one point when that data is empty.
func defaultScoring(it *item.Item) *item.Scoring {
	rules, ok := item.Lookup(it.Type)
	if !ok || rules.ExpectedPoints == nil {
		return &item.Scoring{Method: item.Dichotomous, MaxPoints: 1}
	}
	points := rules.ExpectedPoints(it)
	if points < 2 {
		return &item.Scoring{Method: item.Dichotomous, MaxPoints: 1}
	}
	return &item.Scoring{Method: item.Polytomous, MaxPoints: points}
}

// defaultRationale is the minimal rationale substituted for a missing one.
// Deliberately generic: a healed item still surfaces rationale-quality
// warnings downstream until an author writes real content.
func defaultRationale() *item.Rationale {
	return &item.Rationale{
		Correct:   "Rationale pending author review for the keyed response.",
		Incorrect: "Distractor rationale pending author review.",
	}
}
