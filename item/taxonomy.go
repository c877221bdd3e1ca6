package item

import "strings"

// Pedagogy is the taxonomy metadata attached to an item. Each enum field is
// validated against its fixed vocabulary; there are no cross-item invariants.
type Pedagogy struct {
	CognitiveLevel string   `json:"cognitiveLevel"`
	JudgmentStep   string   `json:"judgmentStep"`
	Category       string   `json:"category"`
	Difficulty     int      `json:"difficulty"`
	Tags           []string `json:"tags,omitempty"`
}

// Cognitive levels, revised Bloom taxonomy.
var cognitiveLevels = vocabulary(
	"remember", "understand", "apply", "analyze", "evaluate", "create",
)

// Clinical-judgment steps, in measurement-model order.
var judgmentSteps = vocabulary(
	"recognizeCues", "analyzeCues", "prioritizeHypotheses",
	"generateSolutions", "takeActions", "evaluateOutcomes",
)

// Content categories of the exam blueprint.
var contentCategories = vocabulary(
	"managementOfCare", "safetyAndInfectionControl", "healthPromotion",
	"psychosocialIntegrity", "basicCareAndComfort", "pharmacologicalTherapies",
	"riskReduction", "physiologicalAdaptation",
)

// KnownCognitiveLevel resolves a cognitive-level spelling to its canonical
// form, tolerating case, space, hyphen, and underscore variants.
func KnownCognitiveLevel(s string) (string, bool) { return cognitiveLevels.resolve(s) }

// KnownJudgmentStep resolves a clinical-judgment-step spelling.
func KnownJudgmentStep(s string) (string, bool) { return judgmentSteps.resolve(s) }

// KnownContentCategory resolves a content-category spelling.
func KnownContentCategory(s string) (string, bool) { return contentCategories.resolve(s) }

// DefaultPedagogy is the neutral taxonomy entry the normalizer substitutes
// when pedagogy is absent.
func DefaultPedagogy() *Pedagogy {
	return &Pedagogy{
		CognitiveLevel: "apply",
		JudgmentStep:   "takeActions",
		Category:       "managementOfCare",
		Difficulty:     3,
		Tags:           []string{"unclassified"},
	}
}

// vocab maps folded spellings to canonical terms.
type vocab map[string]string

func vocabulary(terms ...string) vocab {
	v := make(vocab, len(terms))
	for _, t := range terms {
		v[foldTerm(t)] = t
	}
	return v
}

func (v vocab) resolve(s string) (string, bool) {
	canonical, ok := v[foldTerm(s)]
	return canonical, ok
}

// foldTerm lowercases a term and strips separators so that "Analyze Cues",
// "analyze-cues", and "analyzeCues" compare equal.
func foldTerm(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '-', '_', '/', '&':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
