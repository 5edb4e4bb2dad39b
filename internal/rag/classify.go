package rag

import "strings"

// comparativePhrases signal cross-group comparison intent.
var comparativePhrases = []string{
	"compare", "versus", "vs", "difference", "better", "worse",
	"than", "between", "higher", "lower", "more", "less",
}

// demographicTerms reference the groups a comparison would range over.
var demographicTerms = []string{
	"male", "female", "gender", "international", "first-gen",
}

// IsComparative reports whether question asks for a cross-group comparison.
// It requires both a comparative phrase and a demographic term (substring,
// case-insensitive). Requiring both keeps the heuristic conservative: a
// caller-supplied filter is only discarded when the question genuinely
// spans groups.
func IsComparative(question string) bool {
	lower := strings.ToLower(question)

	hasComparative := false
	for _, phrase := range comparativePhrases {
		if strings.Contains(lower, phrase) {
			hasComparative = true
			break
		}
	}
	if !hasComparative {
		return false
	}

	for _, term := range demographicTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
