package rag

import "testing"

func TestAssembleContextPreservesOrder(t *testing.T) {
	items := []RetrievedItem{
		{Content: "first excerpt"},
		{Content: "second excerpt"},
		{Content: "third excerpt"},
	}

	got := AssembleContext(items)
	want := "first excerpt\n\nsecond excerpt\n\nthird excerpt"
	if got != want {
		t.Errorf("AssembleContext = %q, want %q", got, want)
	}
}

func TestAssembleContextSingleItem(t *testing.T) {
	got := AssembleContext([]RetrievedItem{{Content: "only one"}})
	if got != "only one" {
		t.Errorf("expected no separator for a single item, got %q", got)
	}
}

func TestAssembleContextEmpty(t *testing.T) {
	if got := AssembleContext(nil); got != "" {
		t.Errorf("expected empty string for no items, got %q", got)
	}
}
