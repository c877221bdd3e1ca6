package item

import (
	"testing"
)

func TestCanonicalType(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		known bool
	}{
		{name: "exact tag", in: "multipleChoice", want: TypeMultipleChoice, known: true},
		{name: "case variant", in: "MultipleChoice", want: TypeMultipleChoice, known: true},
		{name: "hyphenated", in: "multiple-choice", want: TypeMultipleChoice, known: true},
		{name: "underscored", in: "select_all", want: TypeSelectAll, known: true},
		{name: "sata alias", in: "SATA", want: TypeSelectAll, known: true},
		{name: "bowtie spaced", in: "bow-tie diagram", want: TypeBowtie, known: true},
		{name: "drag and drop", in: "dragAndDrop", want: TypeDragDropCloze, known: true},
		{name: "trend analysis", in: "trend-analysis", want: TypeTrend, known: true},
		{name: "unknown", in: "essay", known: false},
		{name: "empty", in: "", known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalType(tt.in)
			if ok != tt.known {
				t.Fatalf("CanonicalType(%q) known = %v, want %v", tt.in, ok, tt.known)
			}
			if ok && got != tt.want {
				t.Errorf("CanonicalType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegistryCoversAllTypes(t *testing.T) {
	for _, typ := range Types() {
		rules, ok := Lookup(typ)
		if !ok {
			t.Fatalf("no rules registered for %s", typ)
		}
		if rules.Type != typ {
			t.Errorf("rules for %s carry tag %s", typ, rules.Type)
		}
		if len(rules.Requirements) == 0 {
			t.Errorf("%s has no structural requirements", typ)
		}
		if !rules.DichotomousEligible && rules.ExpectedPoints == nil {
			t.Errorf("%s has neither dichotomous eligibility nor an expected-points rule", typ)
		}
	}
}

func TestSingleBestRequirements(t *testing.T) {
	rules, _ := Lookup(TypeMultipleChoice)

	it := &Item{Options: []Option{{ID: "a"}, {ID: "b"}}, CorrectOptionID: "a"}
	for _, req := range rules.Requirements {
		if !req.Check(it) {
			t.Errorf("valid item fails %s requirement", req.Field)
		}
	}

	short := &Item{Options: []Option{{ID: "a"}}, CorrectOptionID: "a"}
	if rules.Requirements[0].Check(short) {
		t.Error("single option should not satisfy the options requirement")
	}
}

func TestClozeBlankRequirement(t *testing.T) {
	rules, _ := Lookup(TypeCloze)
	blankReq := rules.Requirements[1]

	good := &Item{
		Template: "Give {{b1}} now.",
		Blanks:   []Blank{{ID: "b1", Options: []string{"insulin", "glucagon"}, CorrectOption: "insulin"}},
	}
	if !blankReq.Check(good) {
		t.Error("blank with in-list correct option should satisfy the requirement")
	}

	stray := &Item{
		Template: "Give {{b1}} now.",
		Blanks:   []Blank{{ID: "b1", Options: []string{"insulin", "glucagon"}, CorrectOption: "heparin"}},
	}
	if blankReq.Check(stray) {
		t.Error("correct option outside the blank's own list must fail")
	}
}

func TestBowtieExpectedPoints(t *testing.T) {
	rules, _ := Lookup(TypeBowtie)
	it := &Item{
		CorrectCauseIDs:        []string{"c1"},
		CorrectInterventionIDs: []string{"i1", "i2"},
	}
	if got := rules.ExpectedPoints(it); got != 3 {
		t.Errorf("ExpectedPoints = %d, want 3", got)
	}
}

func TestTaxonomyResolution(t *testing.T) {
	tests := []struct {
		name    string
		resolve func(string) (string, bool)
		in      string
		want    string
		known   bool
	}{
		{name: "cognitive canonical", resolve: KnownCognitiveLevel, in: "analyze", want: "analyze", known: true},
		{name: "cognitive title case", resolve: KnownCognitiveLevel, in: "Analyze", want: "analyze", known: true},
		{name: "judgment spaced", resolve: KnownJudgmentStep, in: "Recognize Cues", want: "recognizeCues", known: true},
		{name: "judgment hyphen", resolve: KnownJudgmentStep, in: "take-actions", want: "takeActions", known: true},
		{name: "category ampersand", resolve: KnownContentCategory, in: "Safety and Infection Control", want: "safetyAndInfectionControl", known: true},
		{name: "category unknown", resolve: KnownContentCategory, in: "algebra", known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.resolve(tt.in)
			if ok != tt.known {
				t.Fatalf("resolve(%q) known = %v, want %v", tt.in, ok, tt.known)
			}
			if ok && got != tt.want {
				t.Errorf("resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromMapRoundTrip(t *testing.T) {
	raw := map[string]any{
		"id":   "q1",
		"type": TypeMultipleChoice,
		"stem": "Which finding requires immediate follow-up?",
		"options": []any{
			map[string]any{"id": "a", "text": "BP 118/76"},
			map[string]any{"id": "b", "text": "SpO2 84% on room air"},
		},
		"correctOptionId": "b",
	}

	it, err := FromMap(raw)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if it.ID != "q1" || it.CorrectOptionID != "b" || len(it.Options) != 2 {
		t.Errorf("decoded item mismatch: %+v", it)
	}

	back, err := it.ToMap()
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	if back["id"] != "q1" || back["correctOptionId"] != "b" {
		t.Errorf("round-trip mismatch: %+v", back)
	}
}
