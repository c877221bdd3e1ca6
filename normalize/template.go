package normalize

import "regexp"

// Blank markers in authored templates arrive in several bracket syntaxes.
// The canonical placeholder is {{blankId}}.
var (
	doubleBracketRe = regexp.MustCompile(`\[\[\s*([A-Za-z0-9_-]+)\s*\]\]`)
	singleBracketRe = regexp.MustCompile(`\[\s*([A-Za-z0-9_-]+)\s*\]`)
)

// canonicalizeTemplate rewrites bracketed blank markers to the canonical
// {{id}} syntax. Returns the rewritten template and whether anything
// changed.
func canonicalizeTemplate(template string) (string, bool) {
	out := doubleBracketRe.ReplaceAllString(template, "{{$1}}")
	out = singleBracketRe.ReplaceAllString(out, "{{$1}}")
	return out, out != template
}
