package item

// Method identifies how raw responses map to points.
type Method string

const (
	// Dichotomous awards exactly one point, all-or-nothing.
	Dichotomous Method = "dichotomous"
	// Polytomous awards one point per correct sub-response. MaxPoints must
	// match the type-specific expected cardinality.
	Polytomous Method = "polytomous"
	// Linkage awards points through a partial-credit map keyed by response
	// combinations.
	Linkage Method = "linkage"
)

// KnownMethod reports whether m is one of the three scoring methods.
func KnownMethod(m Method) bool {
	switch m {
	case Dichotomous, Polytomous, Linkage:
		return true
	}
	return false
}

// Scoring declares an item's scoring rule. The declared method and
// MaxPoints must be internally consistent and consistent with the item's
// own correctness data; the scoring-accuracy dimension enforces both.
type Scoring struct {
	Method        Method             `json:"method"`
	MaxPoints     int                `json:"maxPoints"`
	PartialCredit map[string]float64 `json:"partialCredit,omitempty"`
}
