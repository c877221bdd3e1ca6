package quality

import (
	"github.com/clinsim/itemqa/item"
)

// ItemReport is the result of validating one item. Created fresh on each
// run; two runs over an unchanged item produce identical reports.
type ItemReport struct {
	ItemID          string                `json:"item_id"`
	ItemType        string                `json:"item_type"`
	Verdict         Verdict               `json:"verdict"`
	Score           float64               `json:"score"`
	DimensionScores map[Dimension]float64 `json:"dimension_scores"`
	Diagnostics     []Diagnostic          `json:"diagnostics"`
}

// checker is one dimension's entry point. Checkers are independent and
// side-effect free; run order only affects diagnostic ordering, never
// content.
type checker func(*item.Item, Settings) []Diagnostic

var checkers = []checker{
	checkCompleteness,
	checkTypeStructure,
	checkScoring,
	checkPedagogy,
	checkRationale,
	checkOptionLogic,
	checkDataReferences,
	checkErrorDetection,
}

// Runner validates single items. Construct with NewRunner; the zero value
// is not usable.
type Runner struct {
	settings Settings
}

// Option configures a Runner.
type Option func(*Runner)

// WithSettings replaces the default checker settings.
func WithSettings(s Settings) Option {
	return func(r *Runner) { r.settings = s }
}

// NewRunner creates an item runner with default settings unless overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{settings: DefaultSettings()}
	for _, o := range opts {
		o(r)
	}
	r.settings = r.settings.withDefaults()
	return r
}

// Settings returns the runner's effective settings.
func (r *Runner) Settings() Settings { return r.settings }

// Run validates one item through all eight dimensions and aggregates the
// result. Pure and deterministic: no I/O, no shared state.
func (r *Runner) Run(it *item.Item) ItemReport {
	if it == nil {
		return r.syntheticFailure("", "nil item record")
	}

	var diags []Diagnostic
	for _, check := range checkers {
		diags = append(diags, check(it, r.settings)...)
	}

	score, dimScores, verdict := aggregate(diags)
	return ItemReport{
		ItemID:          it.ID,
		ItemType:        it.Type,
		Verdict:         verdict,
		Score:           score,
		DimensionScores: dimScores,
		Diagnostics:     diags,
	}
}

// RunRaw validates an untyped record. Nil or non-object input becomes a
// synthetic single-diagnostic failure report rather than an error, so one
// bad record never stops a bank-wide run.
func (r *Runner) RunRaw(v any) ItemReport {
	switch rec := v.(type) {
	case nil:
		return r.syntheticFailure("", "record is null")
	case *item.Item:
		return r.Run(rec)
	case item.Item:
		return r.Run(&rec)
	case map[string]any:
		it, err := item.FromMap(rec)
		if err != nil {
			return r.syntheticFailure(stringField(rec, "id"), err.Error())
		}
		return r.Run(it)
	default:
		return r.syntheticFailure("", "record is not a JSON object")
	}
}

func (r *Runner) syntheticFailure(id, msg string) ItemReport {
	diags := []Diagnostic{critical(DimCompleteness, "COMP-000", msg, "")}
	score, dimScores, verdict := aggregate(diags)
	return ItemReport{
		ItemID:          id,
		Verdict:         verdict,
		Score:           score,
		DimensionScores: dimScores,
		Diagnostics:     diags,
	}
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
