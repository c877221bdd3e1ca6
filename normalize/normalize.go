// Package normalize implements the deterministic repair pass that runs
// ahead of quality validation: field aliasing, type-name canonicalization,
// per-type schema coercion, and conservative default-filling. Records are
// never mutated in place; each pass produces a fresh value classified as
// perfect, healed, or quarantined. The pass never consults the external
// repair proposer; that escalation lives in the repair package.
package normalize

import (
	"encoding/json"

	"github.com/clinsim/itemqa/item"
)

// State is a terminal classification of one normalization pass.
type State string

const (
	// StatePerfect means no change was needed.
	StatePerfect State = "perfect"
	// StateHealed means at least one deterministic fix was applied.
	StateHealed State = "healed"
	// StateQuarantined means a hard invariant cannot be repaired.
	StateQuarantined State = "quarantined"
)

// Quarantine reasons.
const (
	ReasonMissingIdentity    = "missing_id_or_type"
	ReasonUndecodable        = "undecodable_record"
	ReasonMissingCorrectness = "missing_correctness_keys"
)

// Result is the outcome of normalizing one raw record.
type Result struct {
	State   State          `json:"state"`
	Item    *item.Item     `json:"item,omitempty"`    // nil when quarantined
	Record  map[string]any `json:"record,omitempty"`  // canonicalized raw form
	Changes []string       `json:"changes,omitempty"` // applied fixes, in order
	Reasons []string       `json:"reasons,omitempty"` // quarantine reasons
}

// Normalize runs the deterministic repair state machine over one raw
// record. The input is never modified.
func Normalize(raw map[string]any) Result {
	rec := deepCopy(raw)
	var changes []string

	// Identity synthesis: canonical names for the common fields, plus
	// shape inference for bowtie records shipped without a type tag.
	applyAliases(rec, identityAliases, &changes)
	inferBowtieType(rec, &changes)

	// Hard gate: without identity there is nothing safe to repair.
	if stringValue(rec, "id") == "" || stringValue(rec, "type") == "" {
		return Result{
			State:   StateQuarantined,
			Changes: changes,
			Reasons: []string{ReasonMissingIdentity},
		}
	}

	// Type-name canonicalization.
	if canonical, ok := item.CanonicalType(stringValue(rec, "type")); ok {
		if canonical != rec["type"] {
			changes = append(changes, "canonicalized type "+stringValue(rec, "type")+" -> "+canonical)
			rec["type"] = canonical
		}
	}
	itemType := stringValue(rec, "type")

	// Per-type deep repair: field aliases, blank sub-fields, template
	// placeholder syntax.
	if aliases, ok := typeFieldAliases[itemType]; ok {
		applyAliases(rec, aliases, &changes)
	}
	repairBlanks(rec, &changes)
	if tmpl, ok := rec["template"].(string); ok {
		if fixed, changed := canonicalizeTemplate(tmpl); changed {
			rec["template"] = fixed
			changes = append(changes, "rewrote template blank markers to {{id}} syntax")
		}
	}

	it, err := item.FromMap(rec)
	if err != nil {
		return Result{
			State:   StateQuarantined,
			Record:  rec,
			Changes: changes,
			Reasons: []string{ReasonUndecodable},
		}
	}

	// Logic verification: hard type-specific invariants. Single-best items
	// tolerate a best-effort default key; bowtie and cloze correctness
	// cannot be guessed.
	if reasons := verifyLogic(it, &changes); len(reasons) > 0 {
		return Result{
			State:   StateQuarantined,
			Record:  rec,
			Changes: changes,
			Reasons: reasons,
		}
	}

	// Defaults for non-fatal gaps.
	if it.Scoring == nil {
		it.Scoring = defaultScoring(it)
		changes = append(changes, "defaulted scoring rule")
	}
	if it.Pedagogy == nil {
		it.Pedagogy = item.DefaultPedagogy()
		changes = append(changes, "defaulted pedagogy")
	}
	if it.Rationale == nil {
		it.Rationale = defaultRationale()
		changes = append(changes, "defaulted rationale")
	}

	out, err := it.ToMap()
	if err != nil {
		return Result{
			State:   StateQuarantined,
			Record:  rec,
			Changes: changes,
			Reasons: []string{ReasonUndecodable},
		}
	}

	state := StatePerfect
	if len(changes) > 0 {
		state = StateHealed
	}
	return Result{State: state, Item: it, Record: out, Changes: changes}
}

// verifyLogic checks the hard invariants that decide between best-effort
// defaulting and quarantine.
func verifyLogic(it *item.Item, changes *[]string) []string {
	rules, ok := item.Lookup(it.Type)
	if !ok {
		// Unknown types pass through; validation flags them.
		return nil
	}

	if rules.SingleBest && it.CorrectOptionID == "" {
		if len(it.Options) == 0 {
			return []string{ReasonMissingCorrectness}
		}
		it.CorrectOptionID = it.Options[0].ID
		*changes = append(*changes, "defaulted correctOptionId to first option")
	}

	switch it.Type {
	case item.TypeBowtie:
		if len(it.CorrectCauseIDs) == 0 || len(it.CorrectInterventionIDs) == 0 {
			return []string{ReasonMissingCorrectness}
		}
	case item.TypeCloze, item.TypeDragDropCloze:
		if len(it.Blanks) == 0 {
			return []string{ReasonMissingCorrectness}
		}
		for _, b := range it.Blanks {
			if b.CorrectOption == "" {
				return []string{ReasonMissingCorrectness}
			}
		}
	}
	return nil
}

// inferBowtieType tags a record as bowtie when both sides of the diagram
// are present under canonical or aliased names and no type is declared.
func inferBowtieType(rec map[string]any, changes *[]string) {
	if stringValue(rec, "type") != "" {
		return
	}
	hasCauses := hasAny(rec, "causes", "conditions", "parameters")
	hasInterventions := hasAny(rec, "interventions", "actions")
	if hasCauses && hasInterventions {
		rec["type"] = item.TypeBowtie
		*changes = append(*changes, "inferred bowtie type from field shape")
	}
}

// repairBlanks canonicalizes sub-field names inside each cloze blank.
func repairBlanks(rec map[string]any, changes *[]string) {
	blanks, ok := rec["blanks"].([]any)
	if !ok {
		return
	}
	blankAliases := []fieldAlias{
		{canonical: "options", aliases: []string{"choices"}},
		{canonical: "correctOption", aliases: []string{"answer", "correctAnswer"}},
	}
	for _, b := range blanks {
		if bm, ok := b.(map[string]any); ok {
			applyAliases(bm, blankAliases, changes)
		}
	}
}

func deepCopy(raw map[string]any) map[string]any {
	if raw == nil {
		return map[string]any{}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}

func stringValue(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func hasAny(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
