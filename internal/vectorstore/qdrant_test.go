package vectorstore

import (
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

func TestBuildFilterNil(t *testing.T) {
	filter, err := buildFilter(nil)
	if err != nil {
		t.Fatalf("buildFilter(nil) error = %v", err)
	}
	if filter != nil {
		t.Errorf("expected nil filter, got %v", filter)
	}

	filter, err = buildFilter(map[string]any{})
	if err != nil {
		t.Fatalf("buildFilter(empty) error = %v", err)
	}
	if filter != nil {
		t.Errorf("expected nil filter for empty map, got %v", filter)
	}
}

func TestBuildFilterConditions(t *testing.T) {
	filter, err := buildFilter(map[string]any{
		"gender":               "Female",
		"international":        true,
		"chunk_index":          2,
		"study_hours_per_week": 12.5,
	})
	if err != nil {
		t.Fatalf("buildFilter() error = %v", err)
	}
	if filter == nil {
		t.Fatal("expected a filter")
	}
	if len(filter.Must) != 4 {
		t.Errorf("expected 4 must conditions, got %d", len(filter.Must))
	}
}

func TestBuildFilterDeterministicOrder(t *testing.T) {
	input := map[string]any{"b": "two", "a": "one", "c": "three"}

	first, err := buildFilter(input)
	if err != nil {
		t.Fatalf("buildFilter() error = %v", err)
	}
	second, err := buildFilter(input)
	if err != nil {
		t.Fatalf("buildFilter() error = %v", err)
	}

	for i := range first.Must {
		if first.Must[i].String() != second.Must[i].String() {
			t.Errorf("condition %d differs between runs", i)
		}
	}
}

func TestBuildFilterUnsupportedType(t *testing.T) {
	if _, err := buildFilter(map[string]any{"bad": []string{"x"}}); err == nil {
		t.Fatal("expected error for unsupported filter value type")
	}
}

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name  string
		value *qdrant.Value
		want  any
	}{
		{"string", qdrant.NewValueString("text"), "text"},
		{"int", qdrant.NewValueInt(42), int64(42)},
		{"double", qdrant.NewValueDouble(0.5), 0.5},
		{"bool", qdrant.NewValueBool(true), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertValue(tt.value); got != tt.want {
				t.Errorf("convertValue() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}
