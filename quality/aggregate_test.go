package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func diag(sev Severity) Diagnostic {
	return Diagnostic{Dimension: DimScoring, Severity: sev, Code: "TEST-000"}
}

func repeat(d Diagnostic, n int) []Diagnostic {
	out := make([]Diagnostic, n)
	for i := range out {
		out[i] = d
	}
	return out
}

func TestDimensionScoreDecay(t *testing.T) {
	tests := []struct {
		name  string
		diags []Diagnostic
		want  float64
	}{
		{name: "clean", diags: nil, want: 100},
		{name: "one critical", diags: repeat(diag(SeverityCritical), 1), want: 60},
		{name: "two criticals", diags: repeat(diag(SeverityCritical), 2), want: 20},
		{name: "three criticals floor", diags: repeat(diag(SeverityCritical), 3), want: 0},
		{
			name:  "critical with concurrent warnings",
			diags: append(repeat(diag(SeverityCritical), 1), repeat(diag(SeverityWarning), 2)...),
			want:  40,
		},
		{name: "one warning", diags: repeat(diag(SeverityWarning), 1), want: 85},
		{name: "four warnings floor", diags: repeat(diag(SeverityWarning), 4), want: 40},
		{
			name:  "warning plus info",
			diags: append(repeat(diag(SeverityWarning), 1), diag(SeverityInfo)),
			want:  80,
		},
		{name: "one info", diags: repeat(diag(SeverityInfo), 1), want: 95},
		{name: "five infos floor", diags: repeat(diag(SeverityInfo), 5), want: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dimensionScore(tt.diags))
		})
	}
}

func TestWeightsTotalOneHundred(t *testing.T) {
	total := 0
	for _, dim := range Dimensions() {
		w, ok := dimensionWeights[dim]
		assert.True(t, ok, "dimension %s has no weight", dim)
		total += w
	}
	assert.Equal(t, 100, total)
}

func TestAggregateVerdictPrecedence(t *testing.T) {
	t.Run("critical wins regardless of score", func(t *testing.T) {
		// A single critical in a low-weight dimension barely moves the
		// overall score but must still force fail.
		diags := []Diagnostic{{Dimension: DimErrorDetection, Severity: SeverityCritical, Code: "ERR-002"}}
		score, _, verdict := aggregate(diags)
		assert.Equal(t, VerdictFail, verdict)
		assert.Equal(t, float64(98), score) // 40-point decay at weight 5
	})

	t.Run("warning without critical", func(t *testing.T) {
		diags := []Diagnostic{{Dimension: DimScoring, Severity: SeverityWarning, Code: "SCORE-020"}}
		_, _, verdict := aggregate(diags)
		assert.Equal(t, VerdictWarn, verdict)
	})

	t.Run("info never disqualifies", func(t *testing.T) {
		diags := []Diagnostic{{Dimension: DimPedagogy, Severity: SeverityInfo, Code: "PED-020"}}
		_, _, verdict := aggregate(diags)
		assert.Equal(t, VerdictPass, verdict)
	})

	t.Run("clean", func(t *testing.T) {
		score, dims, verdict := aggregate(nil)
		assert.Equal(t, VerdictPass, verdict)
		assert.Equal(t, float64(100), score)
		assert.Len(t, dims, 8)
	})
}
