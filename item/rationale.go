package item

// Rationale is the explanatory payload attached to an item: why the keyed
// response is correct, why the distractors are not, and optional teaching
// enrichment. Identical correct/incorrect text is a defect signal flagged
// by the rationale-quality dimension.
type Rationale struct {
	Correct     string            `json:"correct"`
	Incorrect   string            `json:"incorrect"`
	ReviewUnits []string          `json:"reviewUnits,omitempty"`
	Pearls      []string          `json:"pearls,omitempty"`
	Trap        string            `json:"trap,omitempty"`
	Mnemonic    string            `json:"mnemonic,omitempty"`
	PerOption   map[string]string `json:"perOption,omitempty"`
}
