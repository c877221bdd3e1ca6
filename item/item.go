// Package item defines the assessment item data model: a discriminated
// union over the bank's question shapes, the scoring rule attached to each
// item, and the pedagogy and rationale payloads. The per-type structural
// contract lives in the registry (registry.go); this file only declares the
// shapes themselves.
package item

import (
	"encoding/json"
	"fmt"
)

// Option is one selectable entry in an option-like collection (answer
// options, matrix rows/columns, bowtie causes and interventions).
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MatrixMatch pairs a row with its correct column in a matrix item.
type MatrixMatch struct {
	RowID    string `json:"rowId"`
	ColumnID string `json:"columnId"`
}

// Blank is one fill-in slot in a cloze item. CorrectOption must be one of
// the blank's own Options.
type Blank struct {
	ID            string   `json:"id"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correctOption"`
}

// Hotspot is one clickable region on a hotspot item's image.
type Hotspot struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// TimelineEntry is a timestamped event inside an embedded clinical context.
// Time uses strict 24-hour HH:mm notation.
type TimelineEntry struct {
	Time  string `json:"time"`
	Event string `json:"event"`
}

// ClinicalContext carries the optional case material embedded in an item:
// a timed narrative and a nursing-note style timeline.
type ClinicalContext struct {
	Narrative string          `json:"narrative,omitempty"`
	Timeline  []TimelineEntry `json:"timeline,omitempty"`
}

// Item is one gradable assessment unit. The union over question shapes is
// discriminated by Type; only the field group belonging to the declared
// type is populated on a well-formed item. The registry declares which
// group that is.
type Item struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Stem      string     `json:"stem"`
	Scoring   *Scoring   `json:"scoring,omitempty"`
	Pedagogy  *Pedagogy  `json:"pedagogy,omitempty"`
	Rationale *Rationale `json:"rationale,omitempty"`

	// Single-best and multi-select families.
	Options          []Option `json:"options,omitempty"`
	CorrectOptionID  string   `json:"correctOptionId,omitempty"`
	CorrectOptionIDs []string `json:"correctOptionIds,omitempty"`
	SelectCount      int      `json:"n,omitempty"`

	// Span highlight.
	Passage            string `json:"passage,omitempty"`
	CorrectSpanIndices []int  `json:"correctSpanIndices,omitempty"`

	// Ordered sequence. CorrectOrder lists option IDs in the expected order.
	CorrectOrder []string `json:"correctOrder,omitempty"`

	// Matrix match.
	Rows           []Option      `json:"rows,omitempty"`
	Columns        []Option      `json:"columns,omitempty"`
	CorrectMatches []MatrixMatch `json:"correctMatches,omitempty"`

	// Cloze variants.
	Template string  `json:"template,omitempty"`
	Blanks   []Blank `json:"blanks,omitempty"`

	// Bowtie causal diagram.
	Causes                 []Option `json:"causes,omitempty"`
	Interventions          []Option `json:"interventions,omitempty"`
	CorrectCauseIDs        []string `json:"correctCauseIds,omitempty"`
	CorrectInterventionIDs []string `json:"correctInterventionIds,omitempty"`

	// Hotspot on image.
	Hotspots          []Hotspot `json:"hotspots,omitempty"`
	CorrectHotspotIDs []string  `json:"correctHotspotIds,omitempty"`

	// Media-backed variants (graphic, audio/video, chart exhibit).
	MediaURL string `json:"mediaUrl,omitempty"`
	Exhibit  string `json:"exhibit,omitempty"`

	// Optional embedded case material, cross-checked by the
	// data-references dimension when present.
	Context *ClinicalContext `json:"context,omitempty"`
}

// FromMap decodes a raw JSON-shaped record into an Item. Unknown fields are
// dropped; shape mismatches on known fields are reported as an error so the
// caller can convert them into a diagnostic.
func FromMap(raw map[string]any) (*Item, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("item: encode record: %w", err)
	}
	var it Item
	if err := json.Unmarshal(data, &it); err != nil {
		return nil, fmt.Errorf("item: decode record: %w", err)
	}
	return &it, nil
}

// ToMap round-trips an Item back into its raw JSON-shaped form.
func (it *Item) ToMap() (map[string]any, error) {
	data, err := json.Marshal(it)
	if err != nil {
		return nil, fmt.Errorf("item: encode item: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("item: decode item: %w", err)
	}
	return m, nil
}

// OptionIDs returns the IDs of the item's primary option collection.
func (it *Item) OptionIDs() []string { return optionIDs(it.Options) }

// CauseIDs returns the IDs of a bowtie item's cause side.
func (it *Item) CauseIDs() []string { return optionIDs(it.Causes) }

// InterventionIDs returns the IDs of a bowtie item's intervention side.
func (it *Item) InterventionIDs() []string { return optionIDs(it.Interventions) }

// RowIDs returns the IDs of a matrix item's rows.
func (it *Item) RowIDs() []string { return optionIDs(it.Rows) }

// ColumnIDs returns the IDs of a matrix item's columns.
func (it *Item) ColumnIDs() []string { return optionIDs(it.Columns) }

// HotspotIDs returns the IDs of a hotspot item's regions.
func (it *Item) HotspotIDs() []string {
	out := make([]string, 0, len(it.Hotspots))
	for _, h := range it.Hotspots {
		out = append(out, h.ID)
	}
	return out
}

func optionIDs(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.ID)
	}
	return out
}
