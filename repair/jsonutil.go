package repair

import (
	"regexp"
	"strings"
)

// Candidate text from an LLM-backed proposer routinely arrives wrapped in
// markdown fences with JavaScript-style comments and trailing commas.
var (
	fencedObjectRe  = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	bareObjectRe    = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractCandidate pulls the JSON object out of raw proposer output and
// strips the artifacts that make it unparseable. Returns "" when no
// object is present.
func ExtractCandidate(content string) string {
	var raw string
	if m := fencedObjectRe.FindStringSubmatch(content); len(m) > 1 {
		raw = m[1]
	} else if m := bareObjectRe.FindString(content); m != "" {
		raw = m
	}
	if raw == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, stripLineComment(line))
	}
	out := strings.Join(cleaned, "\n")
	return trailingCommaRe.ReplaceAllString(out, "$1")
}

// stripLineComment removes a // comment from a line while respecting
// string values, so URLs inside the JSON survive.
func stripLineComment(line string) string {
	inString := false
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			inString = !inString
		case '/':
			if !inString && i+1 < len(line) && line[i+1] == '/' {
				return strings.TrimRight(line[:i], " \t")
			}
		}
	}
	return line
}
