package rag

import "strings"

// AssembleContext joins the retrieved excerpts into a single context block,
// separated by blank lines, preserving the search service's relevance
// order. Empty input yields an empty string; the engine short-circuits
// before that case reaches generation.
func AssembleContext(items []RetrievedItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, 0, len(items))
	for _, item := range items {
		contents = append(contents, item.Content)
	}
	return strings.Join(contents, "\n\n")
}
