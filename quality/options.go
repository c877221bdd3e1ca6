package quality

import (
	"fmt"
	"strings"

	"github.com/clinsim/itemqa/item"
)

// checkOptionLogic validates the option-like collections themselves:
// duplicate identifiers, duplicate or empty texts, and for cloze items the
// correspondence between declared blanks and template placeholders.
func checkOptionLogic(it *item.Item, _ Settings) []Diagnostic {
	var diags []Diagnostic

	diags = append(diags, checkCollection("options", it.Options)...)
	diags = append(diags, checkCollection("rows", it.Rows)...)
	diags = append(diags, checkCollection("columns", it.Columns)...)
	diags = append(diags, checkCollection("causes", it.Causes)...)
	diags = append(diags, checkCollection("interventions", it.Interventions)...)

	if it.Type == item.TypeCloze || it.Type == item.TypeDragDropCloze {
		for _, b := range it.Blanks {
			token := "{{" + b.ID + "}}"
			if b.ID != "" && !strings.Contains(it.Template, token) {
				diags = append(diags, critical(DimOptionLogic, "OPT-010",
					fmt.Sprintf("blank %q has no %s placeholder in template", b.ID, token), "template"))
			}
		}
	}

	return diags
}

func checkCollection(field string, opts []item.Option) []Diagnostic {
	var diags []Diagnostic
	seenID := make(map[string]bool, len(opts))
	seenText := make(map[string]bool, len(opts))

	for _, o := range opts {
		if seenID[o.ID] {
			diags = append(diags, critical(DimOptionLogic, "OPT-001",
				fmt.Sprintf("duplicate id %q in %s", o.ID, field), field))
		}
		seenID[o.ID] = true

		text := strings.ToLower(strings.TrimSpace(o.Text))
		if text == "" {
			diags = append(diags, warning(DimOptionLogic, "OPT-003",
				fmt.Sprintf("%s entry %q has empty text", field, o.ID), field))
			continue
		}
		if seenText[text] {
			diags = append(diags, warning(DimOptionLogic, "OPT-002",
				fmt.Sprintf("duplicate text in %s: %q", field, o.Text), field))
		}
		seenText[text] = true
	}
	return diags
}
