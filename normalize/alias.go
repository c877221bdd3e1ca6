package normalize

// identityAliases maps each canonical common field to the alias spellings
// accepted at normalization entry. Consulted once, in declaration order;
// the first populated alias wins and the alias key is removed.
var identityAliases = []fieldAlias{
	{canonical: "id", aliases: []string{"masterId", "itemId", "uid"}},
	{canonical: "type", aliases: []string{"itemType", "questionType", "format"}},
	{canonical: "stem", aliases: []string{"prompt", "question"}},
}

// typeFieldAliases maps canonical type tags to their type-specific field
// aliases, applied during per-type deep repair.
var typeFieldAliases = map[string][]fieldAlias{
	"multipleChoice": optionAliases,
	"priorityAction": optionAliases,
	"trend":          optionAliases,
	"graphicChoice":  optionAliases,
	"audioVideo":     optionAliases,
	"chartExhibit":   optionAliases,
	"ordering": {
		{canonical: "options", aliases: []string{"choices", "steps"}},
		{canonical: "correctOrder", aliases: []string{"correctSequence", "order"}},
	},
	"selectAll": {
		{canonical: "options", aliases: []string{"choices"}},
		{canonical: "correctOptionIds", aliases: []string{"correctAnswers", "correctChoiceIds"}},
	},
	"selectN": {
		{canonical: "options", aliases: []string{"choices"}},
		{canonical: "correctOptionIds", aliases: []string{"correctAnswers", "correctChoiceIds"}},
		{canonical: "n", aliases: []string{"selectCount", "numCorrect"}},
	},
	"highlight": {
		{canonical: "passage", aliases: []string{"text", "excerpt"}},
		{canonical: "correctSpanIndices", aliases: []string{"correctSpans", "highlightIndices"}},
	},
	"matrix": {
		{canonical: "correctMatches", aliases: []string{"matches", "answerMatrix"}},
	},
	"bowtie": {
		{canonical: "causes", aliases: []string{"conditions", "parameters"}},
		{canonical: "interventions", aliases: []string{"actions"}},
		{canonical: "correctCauseIds", aliases: []string{"correctConditionIds", "correctParameterIds"}},
		{canonical: "correctInterventionIds", aliases: []string{"correctActionIds"}},
	},
	"hotspot": {
		{canonical: "hotspots", aliases: []string{"regions", "targets"}},
		{canonical: "correctHotspotIds", aliases: []string{"correctRegionIds"}},
	},
	"cloze":         clozeAliases,
	"dragDropCloze": clozeAliases,
}

var optionAliases = []fieldAlias{
	{canonical: "options", aliases: []string{"choices", "answers"}},
	{canonical: "correctOptionId", aliases: []string{"correctAnswer", "answer", "correctChoiceId"}},
}

var clozeAliases = []fieldAlias{
	{canonical: "template", aliases: []string{"text", "sentence"}},
	{canonical: "blanks", aliases: []string{"dropdowns", "gaps"}},
}

type fieldAlias struct {
	canonical string
	aliases   []string
}

// applyAliases renames alias fields to their canonical names on the
// record, recording one change per rename. An alias never overwrites a
// populated canonical field; a shadowed alias is dropped and recorded,
// since its data does not survive the pass.
func applyAliases(rec map[string]any, aliases []fieldAlias, changes *[]string) {
	for _, fa := range aliases {
		for _, alias := range fa.aliases {
			v, ok := rec[alias]
			if !ok {
				continue
			}
			delete(rec, alias)
			if _, taken := rec[fa.canonical]; taken {
				*changes = append(*changes, "dropped "+alias+", "+fa.canonical+" already set")
				continue
			}
			rec[fa.canonical] = v
			*changes = append(*changes, "aliased "+alias+" -> "+fa.canonical)
		}
	}
}
