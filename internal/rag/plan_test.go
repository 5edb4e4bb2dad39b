package rag

import (
	"reflect"
	"testing"
)

func TestPlanRetrievalComparativeOverridesFilter(t *testing.T) {
	filter := map[string]any{"gender": "Female"}
	req := PlanRetrieval("Compare male and female exam scores", filter)

	if req.K != comparativeK {
		t.Errorf("expected k=%d for comparative question, got %d", comparativeK, req.K)
	}
	if req.Filter != nil {
		t.Errorf("expected filter to be discarded, got %v", req.Filter)
	}
}

func TestPlanRetrievalStandardPassesFilterThrough(t *testing.T) {
	filter := map[string]any{"international_student": "Yes"}
	req := PlanRetrieval("What do international students say?", filter)

	if req.K != standardK {
		t.Errorf("expected k=%d for standard question, got %d", standardK, req.K)
	}
	if !reflect.DeepEqual(req.Filter, filter) {
		t.Errorf("expected filter %v to pass through, got %v", filter, req.Filter)
	}
}

func TestPlanRetrievalNilFilter(t *testing.T) {
	req := PlanRetrieval("What is the average attendance?", nil)

	if req.K != standardK {
		t.Errorf("expected k=%d, got %d", standardK, req.K)
	}
	if req.Filter != nil {
		t.Errorf("expected nil filter, got %v", req.Filter)
	}
}
