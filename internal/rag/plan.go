package rag

const (
	// comparativeK is the item count for comparative questions, sized to
	// give every group a chance at representation.
	comparativeK = 6
	// standardK is the item count for single-group questions.
	standardK = 3
)

// PlanRetrieval produces the retrieval parameters for a question.
// Comparative questions must see all groups, so any caller-supplied filter
// is overridden; everything else passes the filter through unchanged.
// There is no adaptive widening on sparse results: sparsity is surfaced by
// the validator instead.
func PlanRetrieval(question string, filter map[string]any) RetrievalRequest {
	if IsComparative(question) {
		return RetrievalRequest{K: comparativeK}
	}
	return RetrievalRequest{K: standardK, Filter: filter}
}
