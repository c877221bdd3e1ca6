package item

import (
	"fmt"
	"strings"
)

// Canonical type tags for the question shapes in the bank. The single-best
// family shares one structural rule set; the two cloze variants share
// another.
const (
	TypeMultipleChoice = "multipleChoice"
	TypeSelectAll      = "selectAll"
	TypeSelectN        = "selectN"
	TypeHighlight      = "highlight"
	TypeOrdering       = "ordering"
	TypeMatrix         = "matrix"
	TypeCloze          = "cloze"
	TypeDragDropCloze  = "dragDropCloze"
	TypeBowtie         = "bowtie"
	TypeTrend          = "trend"
	TypePriorityAction = "priorityAction"
	TypeHotspot        = "hotspot"
	TypeGraphicChoice  = "graphicChoice"
	TypeAudioVideo     = "audioVideo"
	TypeChartExhibit   = "chartExhibit"
)

// Requirement is one structural rule a type imposes: a field (or field
// group) that must be present with at least the declared shape. Check
// returns true when the item satisfies the rule.
type Requirement struct {
	Field  string
	Detail string
	Check  func(*Item) bool
}

// Rules is the structural contract for one item type.
type Rules struct {
	Type         string
	Requirements []Requirement

	// DichotomousEligible marks types whose valid scoring rule is the
	// one-point dichotomous method.
	DichotomousEligible bool

	// SingleBest marks the single-best-answer family: one options list
	// keyed by correctOptionId.
	SingleBest bool

	// ExpectedPoints derives the polytomous point total from the item's
	// correctness data. Nil for dichotomous-only types.
	ExpectedPoints func(*Item) int
}

// typeAliases maps folded spellings to canonical tags. Punctuation and case
// variants observed in authored banks resolve here.
var typeAliases = map[string]string{
	"sata":                 TypeSelectAll,
	"selectallthatapply":   TypeSelectAll,
	"multiselect":          TypeSelectAll,
	"multiplechoicesingle": TypeMultipleChoice,
	"singlebestanswer":     TypeMultipleChoice,
	"mcq":                  TypeMultipleChoice,
	"choosen":              TypeSelectN,
	"spanhighlight":        TypeHighlight,
	"highlighttext":        TypeHighlight,
	"sequencing":           TypeOrdering,
	"orderedresponse":      TypeOrdering,
	"matrixmatch":          TypeMatrix,
	"matrixgrid":           TypeMatrix,
	"clozedropdown":        TypeCloze,
	"dropdowncloze":        TypeCloze,
	"draganddrop":          TypeDragDropCloze,
	"draganddropcloze":     TypeDragDropCloze,
	"bowtiediagram":        TypeBowtie,
	"trendanalysis":        TypeTrend,
	"priority":             TypePriorityAction,
	"hotspotimage":         TypeHotspot,
	"graphicoption":        TypeGraphicChoice,
	"audiovideochoice":     TypeAudioVideo,
	"chartexhibitchoice":   TypeChartExhibit,
}

var registry = buildRegistry()

// CanonicalType resolves a type spelling to its canonical tag. Exact tags,
// known aliases, and case/punctuation variants all resolve; anything else
// reports false.
func CanonicalType(s string) (string, bool) {
	folded := foldTerm(s)
	for _, t := range Types() {
		if foldTerm(t) == folded {
			return t, true
		}
	}
	if t, ok := typeAliases[folded]; ok {
		return t, true
	}
	return "", false
}

// Lookup returns the structural rules for a canonical type tag.
func Lookup(itemType string) (Rules, bool) {
	r, ok := registry[itemType]
	return r, ok
}

// Types returns all canonical type tags in declaration order.
func Types() []string {
	return []string{
		TypeMultipleChoice, TypeSelectAll, TypeSelectN, TypeHighlight,
		TypeOrdering, TypeMatrix, TypeCloze, TypeDragDropCloze, TypeBowtie,
		TypeTrend, TypePriorityAction, TypeHotspot, TypeGraphicChoice,
		TypeAudioVideo, TypeChartExhibit,
	}
}

func buildRegistry() map[string]Rules {
	reg := make(map[string]Rules)

	singleBest := []Requirement{
		{
			Field:  "options",
			Detail: "at least 2 options",
			Check:  func(it *Item) bool { return len(it.Options) >= 2 },
		},
		{
			Field:  "correctOptionId",
			Detail: "correct option key",
			Check:  func(it *Item) bool { return it.CorrectOptionID != "" },
		},
	}
	for _, t := range []string{
		TypeMultipleChoice, TypePriorityAction, TypeTrend,
		TypeGraphicChoice, TypeAudioVideo, TypeChartExhibit,
	} {
		reg[t] = Rules{Type: t, Requirements: singleBest, DichotomousEligible: true, SingleBest: true}
	}

	multiSelect := []Requirement{
		{
			Field:  "options",
			Detail: "at least 4 options",
			Check:  func(it *Item) bool { return len(it.Options) >= 4 },
		},
		{
			Field:  "correctOptionIds",
			Detail: "at least 2 correct option keys",
			Check:  func(it *Item) bool { return len(it.CorrectOptionIDs) >= 2 },
		},
	}
	reg[TypeSelectAll] = Rules{
		Type:           TypeSelectAll,
		Requirements:   multiSelect,
		ExpectedPoints: func(it *Item) int { return len(it.CorrectOptionIDs) },
	}
	reg[TypeSelectN] = Rules{
		Type: TypeSelectN,
		Requirements: append(multiSelect[:len(multiSelect):len(multiSelect)], Requirement{
			Field:  "n",
			Detail: "positive selection count",
			Check:  func(it *Item) bool { return it.SelectCount >= 1 },
		}),
		ExpectedPoints: func(it *Item) int { return it.SelectCount },
	}

	reg[TypeHighlight] = Rules{
		Type: TypeHighlight,
		Requirements: []Requirement{
			{
				Field:  "passage",
				Detail: "passage of at least 30 characters",
				Check:  func(it *Item) bool { return len(strings.TrimSpace(it.Passage)) >= 30 },
			},
			{
				Field:  "correctSpanIndices",
				Detail: "at least 1 correct span index",
				Check:  func(it *Item) bool { return len(it.CorrectSpanIndices) >= 1 },
			},
		},
		ExpectedPoints: func(it *Item) int { return len(it.CorrectSpanIndices) },
	}

	reg[TypeOrdering] = Rules{
		Type: TypeOrdering,
		Requirements: []Requirement{
			{
				Field:  "options",
				Detail: "at least 3 options",
				Check:  func(it *Item) bool { return len(it.Options) >= 3 },
			},
			{
				Field:  "correctOrder",
				Detail: "complete ordering key",
				Check:  func(it *Item) bool { return len(it.CorrectOrder) >= 1 },
			},
		},
		DichotomousEligible: true,
	}

	reg[TypeMatrix] = Rules{
		Type: TypeMatrix,
		Requirements: []Requirement{
			{
				Field:  "rows",
				Detail: "at least 2 rows",
				Check:  func(it *Item) bool { return len(it.Rows) >= 2 },
			},
			{
				Field:  "columns",
				Detail: "at least 2 columns",
				Check:  func(it *Item) bool { return len(it.Columns) >= 2 },
			},
			{
				Field:  "correctMatches",
				Detail: "at least 1 correct match",
				Check:  func(it *Item) bool { return len(it.CorrectMatches) >= 1 },
			},
		},
		ExpectedPoints: func(it *Item) int { return len(it.Rows) },
	}

	cloze := Rules{
		Requirements: []Requirement{
			{
				Field:  "template",
				Detail: "template with blank placeholders",
				Check:  func(it *Item) bool { return strings.TrimSpace(it.Template) != "" },
			},
			{
				Field:  "blanks",
				Detail: "at least 1 blank with a correct option from its own list",
				Check: func(it *Item) bool {
					if len(it.Blanks) < 1 {
						return false
					}
					for _, b := range it.Blanks {
						if !containsString(b.Options, b.CorrectOption) {
							return false
						}
					}
					return true
				},
			},
		},
		ExpectedPoints: func(it *Item) int { return len(it.Blanks) },
	}
	for _, t := range []string{TypeCloze, TypeDragDropCloze} {
		r := cloze
		r.Type = t
		reg[t] = r
	}

	reg[TypeBowtie] = Rules{
		Type: TypeBowtie,
		Requirements: []Requirement{
			{
				Field:  "causes",
				Detail: "at least 2 causes",
				Check:  func(it *Item) bool { return len(it.Causes) >= 2 },
			},
			{
				Field:  "interventions",
				Detail: "at least 2 interventions",
				Check:  func(it *Item) bool { return len(it.Interventions) >= 2 },
			},
			{
				Field:  "correctCauseIds",
				Detail: "at least 1 correct cause key",
				Check:  func(it *Item) bool { return len(it.CorrectCauseIDs) >= 1 },
			},
			{
				Field:  "correctInterventionIds",
				Detail: "at least 1 correct intervention key",
				Check:  func(it *Item) bool { return len(it.CorrectInterventionIDs) >= 1 },
			},
		},
		ExpectedPoints: func(it *Item) int {
			return len(it.CorrectCauseIDs) + len(it.CorrectInterventionIDs)
		},
	}

	reg[TypeHotspot] = Rules{
		Type: TypeHotspot,
		Requirements: []Requirement{
			{
				Field:  "hotspots",
				Detail: "at least 1 hotspot",
				Check:  func(it *Item) bool { return len(it.Hotspots) >= 1 },
			},
			{
				Field:  "correctHotspotIds",
				Detail: "at least 1 correct hotspot key",
				Check:  func(it *Item) bool { return len(it.CorrectHotspotIDs) >= 1 },
			},
		},
		ExpectedPoints: func(it *Item) int { return len(it.CorrectHotspotIDs) },
	}

	for _, t := range Types() {
		if _, ok := reg[t]; !ok {
			panic(fmt.Sprintf("item: type %s missing from registry", t))
		}
	}
	return reg
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
