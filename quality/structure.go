package quality

import (
	"fmt"

	"github.com/clinsim/itemqa/item"
)

// checkTypeStructure validates the item against its type's structural
// contract from the registry. An unrecognized type yields a single
// critical diagnostic and terminates further type-structure checking for
// the item.
func checkTypeStructure(it *item.Item, _ Settings) []Diagnostic {
	if it.Type == "" {
		// Absence of the discriminator is a completeness defect; nothing
		// type-specific can be checked without it.
		return nil
	}

	rules, ok := item.Lookup(it.Type)
	if !ok {
		return []Diagnostic{critical(DimTypeStructure, "TYPE-001",
			fmt.Sprintf("unknown item type %q", it.Type), "type")}
	}

	var diags []Diagnostic
	for _, req := range rules.Requirements {
		if !req.Check(it) {
			diags = append(diags, critical(DimTypeStructure, "TYPE-010",
				fmt.Sprintf("%s requires %s", rules.Type, req.Detail), req.Field))
		}
	}
	return diags
}
