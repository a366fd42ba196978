package boolexpr

import (
	"regexp"
)

// variablePattern matches a single letter bounded by non-word characters.
// Keywords are longer than one character and never match.
var variablePattern = regexp.MustCompile(`\b([a-zA-Z])\b`)

// ExtractVariables returns the distinct single-letter identifiers in
// expression, sorted. A nil result means no variables were found, which
// callers must treat as a non-analyzable input rather than an error.
func ExtractVariables(expression string) []string {
	matches := variablePattern.FindAllStringSubmatch(expression, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		seen[m[1]] = true
	}
	return sortedKeys(seen)
}
