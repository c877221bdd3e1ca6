package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsim/itemqa/item"
)

func severityByCode(diags []Diagnostic, code string) (Severity, bool) {
	for _, d := range diags {
		if d.Code == code {
			return d.Severity, true
		}
	}
	return "", false
}

func TestScoringDichotomousPoints(t *testing.T) {
	it := validMultipleChoice()
	it.Scoring.MaxPoints = 2

	diags := checkScoring(it, DefaultSettings())

	sev, found := severityByCode(diags, "SCORE-010")
	require.True(t, found, "expected SCORE-010")
	assert.Equal(t, SeverityCritical, sev)
}

func TestScoringDichotomousTypeRejectsPolytomousPoints(t *testing.T) {
	it := validMultipleChoice()
	it.Scoring = &item.Scoring{Method: item.Polytomous, MaxPoints: 5}

	report := NewRunner().Run(it)

	sev, found := severityByCode(report.Diagnostics, "SCORE-010")
	require.True(t, found, "expected SCORE-010")
	assert.Equal(t, SeverityCritical, sev)
	assert.Equal(t, VerdictFail, report.Verdict)
}

func TestScoringMultiSelectCardinalityUnderDichotomousMethod(t *testing.T) {
	it := &item.Item{
		ID:   "ms2",
		Type: item.TypeSelectAll,
		Stem: "Select all findings that require intervention now.",
		Options: []item.Option{
			{ID: "a", Text: "one"}, {ID: "b", Text: "two"},
			{ID: "c", Text: "three"}, {ID: "d", Text: "four"},
		},
		CorrectOptionIDs: []string{"a", "b", "c"},
		Scoring:          &item.Scoring{Method: item.Dichotomous, MaxPoints: 1},
	}

	diags := checkScoring(it, DefaultSettings())

	sev, found := severityByCode(diags, "SCORE-020")
	require.True(t, found, "expected SCORE-020")
	assert.Equal(t, SeverityWarning, sev)
	for _, d := range diags {
		assert.NotEqual(t, SeverityCritical, d.Severity, "item is still gradable")
	}
}

func TestScoringUnknownMethod(t *testing.T) {
	it := validMultipleChoice()
	it.Scoring.Method = "rubric"

	diags := checkScoring(it, DefaultSettings())

	sev, found := severityByCode(diags, "SCORE-001")
	require.True(t, found)
	assert.Equal(t, SeverityCritical, sev)
}

func TestScoringNonPositivePoints(t *testing.T) {
	it := validMultipleChoice()
	it.Scoring.MaxPoints = 0

	diags := checkScoring(it, DefaultSettings())

	_, found := severityByCode(diags, "SCORE-002")
	assert.True(t, found)
}

func TestScoringPolytomousMismatchIsWarning(t *testing.T) {
	it := &item.Item{
		ID:   "ms1",
		Type: item.TypeSelectAll,
		Stem: "Select all findings that require intervention now.",
		Options: []item.Option{
			{ID: "a", Text: "one"}, {ID: "b", Text: "two"},
			{ID: "c", Text: "three"}, {ID: "d", Text: "four"},
		},
		CorrectOptionIDs: []string{"a", "b", "c"},
		Scoring:          &item.Scoring{Method: item.Polytomous, MaxPoints: 2},
	}

	diags := checkScoring(it, DefaultSettings())

	sev, found := severityByCode(diags, "SCORE-020")
	require.True(t, found)
	assert.Equal(t, SeverityWarning, sev)
}

func TestScoringBowtieConditionPointTolerated(t *testing.T) {
	bowtie := &item.Item{
		ID:   "bt1",
		Type: item.TypeBowtie,
		Stem: "Complete the diagram for the client's presentation.",
		Causes: []item.Option{
			{ID: "c1", Text: "Hypovolemia"}, {ID: "c2", Text: "Sepsis"},
		},
		Interventions: []item.Option{
			{ID: "i1", Text: "Fluid bolus"}, {ID: "i2", Text: "Antibiotics"},
		},
		CorrectCauseIDs:        []string{"c1"},
		CorrectInterventionIDs: []string{"i1", "i2"},
	}

	t.Run("exact total is clean", func(t *testing.T) {
		bowtie.Scoring = &item.Scoring{Method: item.Polytomous, MaxPoints: 3}
		diags := checkScoring(bowtie, DefaultSettings())
		_, found020 := severityByCode(diags, "SCORE-020")
		_, found021 := severityByCode(diags, "SCORE-021")
		assert.False(t, found020)
		assert.False(t, found021)
	})

	t.Run("plus one is info", func(t *testing.T) {
		bowtie.Scoring = &item.Scoring{Method: item.Polytomous, MaxPoints: 4}
		diags := checkScoring(bowtie, DefaultSettings())
		sev, found := severityByCode(diags, "SCORE-021")
		require.True(t, found)
		assert.Equal(t, SeverityInfo, sev)
	})

	t.Run("plus two is warning", func(t *testing.T) {
		bowtie.Scoring = &item.Scoring{Method: item.Polytomous, MaxPoints: 5}
		diags := checkScoring(bowtie, DefaultSettings())
		sev, found := severityByCode(diags, "SCORE-020")
		require.True(t, found)
		assert.Equal(t, SeverityWarning, sev)
	})
}

func TestScoringSelectNCountMismatch(t *testing.T) {
	it := &item.Item{
		ID:          "sn1",
		Type:        item.TypeSelectN,
		Stem:        "Choose the two priority actions for this client.",
		SelectCount: 2,
		Options: []item.Option{
			{ID: "a", Text: "one"}, {ID: "b", Text: "two"},
			{ID: "c", Text: "three"}, {ID: "d", Text: "four"},
		},
		CorrectOptionIDs: []string{"a", "b", "c"},
		Scoring:          &item.Scoring{Method: item.Polytomous, MaxPoints: 2},
	}

	diags := checkScoring(it, DefaultSettings())

	sev, found := severityByCode(diags, "SCORE-023")
	require.True(t, found)
	assert.Equal(t, SeverityWarning, sev)
}

func TestScoringCrossReferences(t *testing.T) {
	t.Run("matrix match outside rows", func(t *testing.T) {
		it := &item.Item{
			ID:   "mx1",
			Type: item.TypeMatrix,
			Rows: []item.Option{{ID: "r1", Text: "Finding"}, {ID: "r2", Text: "Finding two"}},
			Columns: []item.Option{
				{ID: "k1", Text: "Expected"}, {ID: "k2", Text: "Unexpected"},
			},
			CorrectMatches: []item.MatrixMatch{{RowID: "r9", ColumnID: "k1"}},
		}
		diags := checkKeyReferences(it)
		sev, found := severityByCode(diags, "SCORE-030")
		require.True(t, found)
		assert.Equal(t, SeverityCritical, sev)
	})

	t.Run("blank correct option outside its list", func(t *testing.T) {
		it := &item.Item{
			ID:     "cl1",
			Type:   item.TypeCloze,
			Blanks: []item.Blank{{ID: "b1", Options: []string{"x", "y"}, CorrectOption: "z"}},
		}
		diags := checkKeyReferences(it)
		_, found := severityByCode(diags, "SCORE-030")
		assert.True(t, found)
	})

	t.Run("negative span index", func(t *testing.T) {
		it := &item.Item{
			ID:                 "hl1",
			Type:               item.TypeHighlight,
			CorrectSpanIndices: []int{2, -1},
		}
		diags := checkKeyReferences(it)
		_, found := severityByCode(diags, "SCORE-030")
		assert.True(t, found)
	})

	t.Run("hotspot key outside hotspots", func(t *testing.T) {
		it := &item.Item{
			ID:                "hs1",
			Type:              item.TypeHotspot,
			Hotspots:          []item.Hotspot{{ID: "h1"}},
			CorrectHotspotIDs: []string{"h2"},
		}
		diags := checkKeyReferences(it)
		_, found := severityByCode(diags, "SCORE-030")
		assert.True(t, found)
	})
}
