package quality

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clinsim/itemqa/item"
)

// Defect signatures scanned for in the serialized record. Hard signatures
// are artifacts of a broken generation run and make the item unusable;
// soft signatures are markers an author meant to come back to.
var (
	hardDefectSignatures = []string{
		`"undefined"`,
		"[object object]",
		"nan points",
	}
	softDefectSignatures = []string{
		"lorem ipsum",
		"placeholder",
		"tbd:",
		"todo:",
		"fixme",
	}
)

// checkErrorDetection scans the whole serialized record for defect
// signatures and flags suspiciously short stems.
func checkErrorDetection(it *item.Item, s Settings) []Diagnostic {
	var diags []Diagnostic

	data, err := json.Marshal(it)
	if err != nil {
		// Items decoded from JSON always re-encode; treat failure as a
		// defect of the record rather than aborting the run.
		return []Diagnostic{critical(DimErrorDetection, "ERR-001",
			"record cannot be serialized", "")}
	}
	serialized := strings.ToLower(string(data))

	for _, sig := range hardDefectSignatures {
		if strings.Contains(serialized, sig) {
			diags = append(diags, critical(DimErrorDetection, "ERR-002",
				fmt.Sprintf("defect signature %q in record", sig), ""))
		}
	}
	for _, sig := range softDefectSignatures {
		if strings.Contains(serialized, sig) {
			diags = append(diags, warning(DimErrorDetection, "ERR-003",
				fmt.Sprintf("placeholder marker %q in record", sig), ""))
		}
	}

	stem := strings.TrimSpace(it.Stem)
	if len(stem) >= s.MinStemLength && len(stem) < s.ShortStemLength {
		diags = append(diags, warning(DimErrorDetection, "ERR-010",
			"suspiciously short stem", "stem"))
	}

	return diags
}
